package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		provider     string
		openAIKey    string
		geminiKey    string
		expectErr    string
		expectedName string
	}{
		{
			name:         "default is openai",
			provider:     "",
			openAIKey:    "sk-test",
			expectedName: "openai",
		},
		{
			name:         "explicit openai",
			provider:     "openai",
			openAIKey:    "sk-test",
			expectedName: "openai",
		},
		{
			name:      "openai without key",
			provider:  "openai",
			expectErr: "OPENAI_API_KEY",
		},
		{
			name:         "gemini",
			provider:     "gemini",
			geminiKey:    "AIza-test",
			expectedName: "gemini",
		},
		{
			name:      "gemini without key",
			provider:  "gemini",
			expectErr: "GEMINI_API_KEY",
		},
		{
			name:         "mock",
			provider:     "mock",
			expectedName: "mock",
		},
		{
			name:      "unknown provider",
			provider:  "mistral",
			expectErr: "unknown generator provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GENERATOR_PROVIDER", tt.provider)
			t.Setenv("OPENAI_API_KEY", tt.openAIKey)
			t.Setenv("GEMINI_API_KEY", tt.geminiKey)

			gen, err := NewFromEnv()
			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, gen.GetProviderInfo().Name)
		})
	}
}

func TestMockProvider_GenerateEmail(t *testing.T) {
	mock := NewMockProvider("custom body")

	body, err := mock.GenerateEmail(context.Background(), Prompt{System: "sys", User: "user prompt"})
	require.NoError(t, err)
	assert.Equal(t, "custom body", body)
	assert.Equal(t, "user prompt", mock.LastPrompt.User)
}

func TestMockProvider_DefaultBodyHasNextSteps(t *testing.T) {
	mock := NewMockProvider("")

	body, err := mock.GenerateEmail(context.Background(), Prompt{User: "transcript prompt"})
	require.NoError(t, err)
	assert.Contains(t, body, "Next Steps:")
}

func TestMockProvider_EmptyPrompt(t *testing.T) {
	mock := NewMockProvider("")

	_, err := mock.GenerateEmail(context.Background(), Prompt{})
	assert.Error(t, err)
}

func TestMockProvider_ConfiguredError(t *testing.T) {
	mock := NewMockProvider("")
	mock.Err = errors.New("provider down")

	_, err := mock.GenerateEmail(context.Background(), Prompt{User: "prompt"})
	assert.ErrorContains(t, err, "provider down")
}
