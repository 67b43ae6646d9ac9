package profile

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// NewGoogleTagger creates an LLM tagger backed by a Gemini model.
func NewGoogleTagger(apiKey, model string) (*LLMTagger, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	gen := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			return "", fmt.Errorf("google API error: %w", err)
		}

		if resp == nil || len(resp.Candidates) == 0 {
			return "", errEmptyResponse("google")
		}

		var content string
		if resp.Candidates[0].Content != nil {
			for _, part := range resp.Candidates[0].Content.Parts {
				if part.Text != "" {
					content += part.Text
				}
			}
		}
		if content == "" {
			return "", errEmptyResponse("google")
		}
		return content, nil
	}

	return newLLMTagger("google", model, gen), nil
}
