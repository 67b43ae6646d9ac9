package profile

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
)

// NewOpenAITagger creates an LLM tagger backed by an OpenAI model.
func NewOpenAITagger(apiKey, model string) (*LLMTagger, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	client := openai.NewClient()
	gen := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			MaxCompletionTokens: openai.Int(1024),
		})
		if err != nil {
			return "", fmt.Errorf("openai API error: %w", err)
		}

		if len(resp.Choices) == 0 {
			return "", errEmptyResponse("openai")
		}
		return resp.Choices[0].Message.Content, nil
	}

	return newLLMTagger("openai", model, gen), nil
}
