package ocr

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the default vision model for screenshot extraction.
const DefaultGeminiModel = "gemini-2.5-flash"

// Gemini extracts portfolio lines through the Gemini API. The API key is
// taken from the environment (GEMINI_API_KEY), like the rest of the genai
// client configuration.
type Gemini struct {
	// Model overrides DefaultGeminiModel when non-empty.
	Model string
	// Temperature for generation; extraction wants 0.
	Temperature float32
}

// Extract sends the screenshot and the extraction prompt to the model and
// returns the extraction JSON document.
func (g *Gemini) Extract(ctx context.Context, imagePath string) (string, error) {
	data, mimeType, err := readImage(imagePath)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("cannot initialize gemini client: %w", err)
	}

	model := g.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(extractionPrompt),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(g.Temperature)}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini extraction failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return ExtractJSON(text), nil
}
