package generator

import (
	"context"
	"errors"
	"strings"
)

// MockProvider is a deterministic implementation for testing
type MockProvider struct {
	// Body is returned verbatim when set; otherwise a canned email is
	// produced from the prompt so tests can assert on pass-through.
	Body string
	Err  error

	// LastPrompt records the most recent call for assertions.
	LastPrompt Prompt
}

// NewMockProvider creates a mock provider returning the given body
func NewMockProvider(body string) *MockProvider {
	return &MockProvider{Body: body}
}

// GenerateEmail returns the configured body or error
func (m *MockProvider) GenerateEmail(ctx context.Context, prompt Prompt) (string, error) {
	m.LastPrompt = prompt

	if m.Err != nil {
		return "", m.Err
	}
	if strings.TrimSpace(prompt.User) == "" {
		return "", errors.New("empty prompt provided")
	}
	if m.Body != "" {
		return m.Body, nil
	}

	return "Hi,\n\nThanks for the meeting.\n\nNext Steps:\n- Follow up next week\n\nAll the best,\nJames", nil
}

// GetProviderInfo returns mock provider information
func (m *MockProvider) GetProviderInfo() ProviderInfo {
	return ProviderInfo{
		Name:  "mock",
		Model: "mock-model",
	}
}
