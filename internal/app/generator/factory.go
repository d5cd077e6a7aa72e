package generator

import (
	"fmt"
	"os"

	appopenai "meeting-followup/internal/app/api/openai"
)

// NewFromEnv selects the generation provider from GENERATOR_PROVIDER.
// Unset defaults to OpenAI, matching the tool's original behavior.
func NewFromEnv() (EmailGenerator, error) {
	switch provider := os.Getenv("GENERATOR_PROVIDER"); provider {
	case "", "openai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			return nil, fmt.Errorf("openai generator requires OPENAI_API_KEY")
		}
		return NewOpenAIProvider(appopenai.GetClient()), nil
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("gemini generator requires GEMINI_API_KEY")
		}
		return NewGeminiProvider(key), nil
	case "mock":
		return NewMockProvider(""), nil
	default:
		return nil, fmt.Errorf("unknown generator provider: %s", provider)
	}
}
