package generator

import "context"

// EmailGenerator defines the interface for all follow-up email generators
// Following Interface Segregation Principle - keep it focused
type EmailGenerator interface {
	// GenerateEmail turns a composed prompt into a finished email body
	GenerateEmail(ctx context.Context, prompt Prompt) (string, error)

	// GetProviderInfo returns metadata about the provider
	GetProviderInfo() ProviderInfo
}

// Prompt is the composed input for a generation call. System sets the
// persona, User carries the transcript, style rules and examples.
type Prompt struct {
	System string
	User   string
}

// ProviderInfo contains metadata about a generation provider
type ProviderInfo struct {
	Name  string // Provider name (e.g., "openai", "gemini")
	Model string // Model identifier (e.g., "gpt-3.5-turbo")
}
