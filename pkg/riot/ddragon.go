package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Data Dragon is a static CDN, so the champion id to name mapping is
// fetched once and kept for the lifetime of the client.
type championNames struct {
	mu    sync.Mutex
	byId  map[int]string
	ready bool
}

type ddragonChampions struct {
	Data map[string]struct {
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"data"`
}

// ChampionNameById resolves a numeric champion id to its display name.
func (c *Client) ChampionNameById(ctx context.Context, championId int) (string, error) {
	if err := c.loadChampionNames(ctx); err != nil {
		return "", err
	}

	name, ok := c.champions.byId[championId]
	if !ok {
		return "", fmt.Errorf("unknown champion id %d", championId)
	}
	return name, nil
}

// loadChampionNames pulls the latest champion list from Data Dragon.
func (c *Client) loadChampionNames(ctx context.Context) error {
	c.champions.mu.Lock()
	defer c.champions.mu.Unlock()

	if c.champions.ready {
		return nil
	}

	var versions []string
	if err := c.getStatic(ctx, "https://ddragon.leagueoflegends.com/api/versions.json", &versions); err != nil {
		return fmt.Errorf("failed to fetch ddragon versions: %v", err)
	}
	if len(versions) == 0 {
		return fmt.Errorf("ddragon returned no versions")
	}

	var champions ddragonChampions
	endpoint := fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/data/en_US/champion.json", versions[0])
	if err := c.getStatic(ctx, endpoint, &champions); err != nil {
		return fmt.Errorf("failed to fetch ddragon champions: %v", err)
	}

	c.champions.byId = make(map[int]string, len(champions.Data))
	for _, champion := range champions.Data {
		var id int
		if _, err := fmt.Sscanf(champion.Key, "%d", &id); err != nil {
			continue
		}
		c.champions.byId[id] = champion.Name
	}
	c.champions.ready = true

	return nil
}

// getStatic fetches an unauthenticated CDN resource. Data Dragon doesn't
// count against the API rate limits, so the limiter is skipped.
func (c *Client) getStatic(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
