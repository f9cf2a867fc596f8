// Package ocr turns a portfolio screenshot into the extraction JSON the
// classification pipeline consumes, by asking a multimodal model to read the
// image. Two backends are provided: Gemini (the default) and any
// OpenAI-compatible endpoint through OpenRouter.
package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
)

// Extractor reads one portfolio image and returns the raw extraction JSON
// document ({"assets": [...]}) as produced by the model.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}

// jsonBlockRe finds the outermost JSON object in a model response.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON extracts the JSON document from a model response, tolerating
// models that wrap it in prose or markdown fences despite the instructions.
// If no valid JSON object is found the response is returned unchanged, so
// the parse error surfaces downstream with the original content.
func ExtractJSON(response string) string {
	if m := jsonBlockRe.FindString(response); m != "" && json.Valid([]byte(m)) {
		return m
	}
	return response
}

// readImage loads the screenshot and sniffs its media type.
func readImage(imagePath string) (data []byte, mimeType string, err error) {
	data, err = os.ReadFile(imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("cannot read image %q: %w", imagePath, err)
	}
	mimeType = http.DetectContentType(data)
	return data, mimeType, nil
}
