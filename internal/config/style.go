package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StyleProfile describes the advisor voice the generator should imitate:
// who signs the email, how it is structured, and a few real examples the
// model can pattern-match against.
type StyleProfile struct {
	AdvisorName  string   `yaml:"advisor_name"`
	AdvisorRole  string   `yaml:"advisor_role"`
	Firm         string   `yaml:"firm"`
	SignOffs     []string `yaml:"sign_offs,omitempty"`
	Sections     []string `yaml:"sections,omitempty"`
	Traits       []string `yaml:"traits,omitempty"`
	Examples     []string `yaml:"examples,omitempty"`
	SystemPrompt string   `yaml:"system_prompt,omitempty"`
}

// DefaultStyleProfile returns the built-in profile used when no YAML file
// is configured. Keeping a usable default means a bare OPENAI_API_KEY is
// enough to run the tool.
func DefaultStyleProfile() *StyleProfile {
	return &StyleProfile{
		AdvisorName: "James",
		AdvisorRole: "professional wealth management advisor",
		Firm:        "Ewing Morris",
		SignOffs:    []string{"All the best, James", "Warm regards, James"},
		Sections:    []string{"Participants", "Objective", "Key Takeaways", "Next Steps"},
		Traits: []string{
			"Warm, professional greeting",
			"Brief friendly opener acknowledging the meeting",
			"Clear structure with sections like \"Key Takeaways\" and \"Next Steps\"",
			"Use bullet points and numbered lists for clarity",
			"Bold formatting for important sections (**text**)",
			"Professional but personable tone",
			"Include specific details and action items",
		},
		SystemPrompt: "You are a professional wealth management advisor who writes clear, structured follow-up emails after client meetings.",
	}
}

// LoadStyleProfile loads a style profile from a YAML file. Fields left
// empty in the file fall back to the default profile so partial configs
// stay valid.
func LoadStyleProfile(configPath string) (*StyleProfile, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("style config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read style config: %w", err)
	}

	profile := DefaultStyleProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse style config YAML: %w", err)
	}

	if profile.AdvisorName == "" {
		return nil, fmt.Errorf("style config must set advisor_name")
	}

	return profile, nil
}

// ResolveStyleProfile picks the profile from STYLE_CONFIG, then the
// default location under the project root, then the built-in default.
func ResolveStyleProfile() (*StyleProfile, error) {
	if path := os.Getenv("STYLE_CONFIG"); path != "" {
		return LoadStyleProfile(path)
	}

	if root, err := GetProjectRoot(); err == nil {
		defaultPath := filepath.Join(root, "configs", "style.yaml")
		if _, err := os.Stat(defaultPath); err == nil {
			return LoadStyleProfile(defaultPath)
		}
	}

	return DefaultStyleProfile(), nil
}
