package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// openRouterBaseURL is the OpenAI-compatible endpoint of OpenRouter.
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	// DefaultOpenRouterModel is a free vision-capable model, good enough for
	// clean screenshots.
	DefaultOpenRouterModel = "mistralai/mistral-small-3.1-24b-instruct:free"
)

// OpenRouter extracts portfolio lines through any OpenAI-compatible vision
// model served by OpenRouter.
type OpenRouter struct {
	// Model overrides DefaultOpenRouterModel when non-empty.
	Model string
	// APIKey falls back to the OPENROUTER_API_KEY environment variable.
	APIKey string
	// Temperature for generation; extraction wants 0.
	Temperature float32
}

// Extract sends the screenshot as a data URL with the extraction prompt and
// returns the extraction JSON document.
func (o *OpenRouter) Extract(ctx context.Context, imagePath string) (string, error) {
	apiKey := o.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENROUTER_API_KEY")
	}
	if apiKey == "" {
		return "", fmt.Errorf("an OpenRouter API key is required (flag or OPENROUTER_API_KEY)")
	}

	data, mimeType, err := readImage(imagePath)
	if err != nil {
		return "", err
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	client := openai.NewClientWithConfig(cfg)

	model := o.Model
	if model == "" {
		model = DefaultOpenRouterModel
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: o.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionPrompt},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
				}},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter extraction failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}
	return ExtractJSON(resp.Choices[0].Message.Content), nil
}
