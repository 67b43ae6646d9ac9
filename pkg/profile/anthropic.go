package profile

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// NewAnthropicTagger creates an LLM tagger backed by a Claude model.
func NewAnthropicTagger(apiKey, model string) (*LLMTagger, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient()
	gen := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(model),
			MaxTokens: 1024,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if err != nil {
			return "", fmt.Errorf("anthropic API error: %w", err)
		}

		var content string
		for _, block := range resp.Content {
			if block.Type == "text" {
				content += block.Text
			}
		}
		if content == "" {
			return "", errEmptyResponse("anthropic")
		}
		return content, nil
	}

	return newLLMTagger("anthropic", model, gen), nil
}
