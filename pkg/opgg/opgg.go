package opgg

import (
	"context"
	"fmt"
	appConfig "riftwind/pkg/config"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const callTimeout = 15 * time.Second

// Client talks to the OP.GG MCP endpoint for meta reference data.
// One session is opened per call; the remote endpoint is stateless enough
// that holding sessions open buys nothing.
type Client struct {
	endpoint string
	impl     *mcp.Implementation
}

// NewClient builds a client against the configured OP.GG endpoint.
func NewClient() *Client {
	return &Client{
		endpoint: appConfig.OPGG.Endpoint,
		impl: &mcp.Implementation{
			Name:    "riftwind",
			Version: "1.0.0",
		},
	}
}

// SummonerProfile fetches the OP.GG profile summary for a riot id.
func (c *Client) SummonerProfile(ctx context.Context, gameName, tagLine, region string) (string, error) {
	return c.callTool(ctx, "lol_get_summoner_profile", map[string]any{
		"game_name": gameName,
		"tag_line":  tagLine,
		"region":    region,
	})
}

// ChampionAnalysis fetches reference build and win-rate data for a champion
// in a given position.
func (c *Client) ChampionAnalysis(ctx context.Context, champion, position, region string) (string, error) {
	return c.callTool(ctx, "lol_get_champion_analysis", map[string]any{
		"champion":  champion,
		"position":  position,
		"game_mode": "RANKED",
		"region":    strings.ToUpper(region),
	})
}

// callTool opens a session, invokes one tool and collects the text content.
func (c *Client) callTool(ctx context.Context, name string, arguments map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	client := mcp.NewClient(c.impl, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: c.endpoint}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to connect to the meta endpoint: %v", err)
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	if err != nil {
		return "", fmt.Errorf("tool %s failed: %v", name, err)
	}
	if result.IsError {
		return "", fmt.Errorf("tool %s returned an error result", name)
	}

	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("tool %s returned no text content", name)
	}
	return strings.Join(parts, "\n"), nil
}
