package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Generation parameters carried over from the tool's first version;
// changing them changes the voice of every email the team sends.
const (
	openaiModel       = openai.GPT3Dot5Turbo
	openaiMaxTokens   = 1500
	openaiTemperature = 0.7
)

// OpenAIProvider implements EmailGenerator using the OpenAI chat API
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider creates a new OpenAI generation provider
func NewOpenAIProvider(client *openai.Client) *OpenAIProvider {
	return &OpenAIProvider{client: client}
}

// GenerateEmail generates the follow-up email body via chat completion
func (p *OpenAIProvider) GenerateEmail(ctx context.Context, prompt Prompt) (string, error) {
	if strings.TrimSpace(prompt.User) == "" {
		return "", errors.New("empty prompt provided")
	}

	request := openai.ChatCompletionRequest{
		Model: openaiModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt.User,
			},
		},
		MaxTokens:   openaiMaxTokens,
		Temperature: openaiTemperature,
	}

	resp, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	body := strings.TrimSpace(resp.Choices[0].Message.Content)
	if body == "" {
		return "", errors.New("chat completion returned empty content")
	}

	return body, nil
}

// GetProviderInfo returns information about the OpenAI provider
func (p *OpenAIProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:  "openai",
		Model: openaiModel,
	}
}
