package genai

import (
	"context"
	"fmt"
	appConfig "riftwind/pkg/config"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Generator turns a prompt into text. The analysis layer only builds the
// prompts; the invocation lives behind this interface so the engine stays
// testable without network access.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	generateTimeout = 30 * time.Second
	maxTokens       = 300
)

// AnthropicGenerator calls the Anthropic messages API.
type AnthropicGenerator struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewAnthropicGenerator builds a generator from the GenAI configuration.
func NewAnthropicGenerator() (*AnthropicGenerator, error) {
	if appConfig.GenAI.ApiKey == "" {
		return nil, fmt.Errorf("generator API key is required")
	}

	return &AnthropicGenerator{
		client: anthropic.NewClient(option.WithAPIKey(appConfig.GenAI.ApiKey)),
		model:  anthropic.Model(appConfig.GenAI.Model),
	}, nil
}

// Generate sends the prompt as a single user message and returns the first
// text block of the response.
func (g *AnthropicGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     g.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("generation request failed: %v", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("generation response had no text content")
}
