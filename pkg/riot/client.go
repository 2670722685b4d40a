package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"riftwind/pkg/config"
	"riftwind/pkg/regions"
	"time"
)

// NotFoundError marks a 404 from the Riot API so callers can distinguish
// missing summoners from transport failures.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// Client does authenticated, rate-limited requests against the Riot API.
type Client struct {
	http      *http.Client
	limiter   *RateLimiter
	apiKey    string
	champions championNames
}

// NewClient creates a client with the configured API key and limits.
func NewClient() (*Client, error) {
	if config.Riot.ApiKey == "" {
		return nil, fmt.Errorf("can't do authenticated requests without the API key")
	}

	return &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: NewRateLimiter(),
		apiKey:  config.Riot.ApiKey,
	}, nil
}

// AccountByRiotId resolves a game name and tag line to an account.
func (c *Client) AccountByRiotId(ctx context.Context, routing regions.Routing, gameName, tagLine string) (*Account, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		routing, url.PathEscape(gameName), url.PathEscape(tagLine))

	var account Account
	if err := c.getJSON(ctx, endpoint, "account", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SummonerByPuuid fetches the platform summoner record.
func (c *Client) SummonerByPuuid(ctx context.Context, platform regions.Platform, puuid string) (*Summoner, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s", platform, puuid)

	var summoner Summoner
	if err := c.getJSON(ctx, endpoint, "summoner", &summoner); err != nil {
		return nil, err
	}
	return &summoner, nil
}

// MasteriesByPuuid fetches the champion mastery list, best champion first.
func (c *Client) MasteriesByPuuid(ctx context.Context, platform regions.Platform, puuid string) ([]Mastery, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/champion-mastery/v4/champion-masteries/by-puuid/%s", platform, puuid)

	var masteries []Mastery
	if err := c.getJSON(ctx, endpoint, "masteries", &masteries); err != nil {
		return nil, err
	}
	return masteries, nil
}

// MatchIdsByPuuid lists match ids inside a creation window, newest first.
func (c *Client) MatchIdsByPuuid(ctx context.Context, routing regions.Routing, puuid string, start, end time.Time, count int) ([]string, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?startTime=%d&endTime=%d&start=0&count=%d",
		routing, puuid, start.Unix(), end.Unix(), count)

	var ids []string
	if err := c.getJSON(ctx, endpoint, "match ids", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// MatchById fetches one full match payload.
func (c *Client) MatchById(ctx context.Context, routing regions.Routing, matchId string) (*RawMatch, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", routing, matchId)

	var raw RawMatch
	if err := c.getJSON(ctx, endpoint, "match "+matchId, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// TimelineById fetches the event timeline of one match.
func (c *Client) TimelineById(ctx context.Context, routing regions.Routing, matchId string) (*RawTimeline, error) {
	endpoint := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s/timeline", routing, matchId)

	var raw RawTimeline
	if err := c.getJSON(ctx, endpoint, "timeline "+matchId, &raw); err != nil {
		return nil, err
	}
	return &raw, nil
}

// getJSON does one authenticated request and decodes the body.
func (c *Client) getJSON(ctx context.Context, endpoint, resource string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request for %s: %v", resource, err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request for %s failed: %v", resource, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return &NotFoundError{Resource: resource}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request for %s returned %d: %s", resource, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %v", resource, err)
	}
	return nil
}
