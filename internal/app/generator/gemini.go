package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-1.5-flash"

// GeminiProvider implements EmailGenerator using the Google Gemini API
type GeminiProvider struct {
	apiKey string
	model  string
}

// NewGeminiProvider creates a new Gemini generation provider
func NewGeminiProvider(apiKey string) *GeminiProvider {
	return &GeminiProvider{
		apiKey: apiKey,
		model:  geminiModel,
	}
}

// GenerateEmail generates the follow-up email body with Gemini
func (g *GeminiProvider) GenerateEmail(ctx context.Context, prompt Prompt) (string, error) {
	if strings.TrimSpace(prompt.User) == "" {
		return "", errors.New("empty prompt provided")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	// Gemini has no separate system role on this path; prepend the
	// persona to the user prompt instead.
	full := prompt.User
	if prompt.System != "" {
		full = prompt.System + "\n\n" + prompt.User
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(full), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	body := strings.TrimSpace(text.String())
	if body == "" {
		return "", errors.New("empty response from Gemini")
	}

	return body, nil
}

// GetProviderInfo returns information about the Gemini provider
func (g *GeminiProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:  "gemini",
		Model: geminiModel,
	}
}
