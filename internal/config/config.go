// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Interview parameters
	Role          string `json:"role,omitempty"`           // Target role, e.g. "Backend Engineer"
	Experience    string `json:"experience,omitempty"`     // Experience band, e.g. "Junior", "Mid", "Senior"
	Category      string `json:"category,omitempty"`       // technical | behavioral | mixed
	QuestionCount int    `json:"question_count,omitempty"` // Questions per session (5-10)

	// Candidate Info
	CandidateID string `json:"candidate_id,omitempty"` // Candidate identifier supplied by the caller

	// Providers
	APIKey      string `json:"api_key,omitempty"`       // Gemini API key
	LocalURL    string `json:"local_url,omitempty"`     // Local OpenAI-compatible endpoint, e.g. http://localhost:11434
	LocalModel  string `json:"local_model,omitempty"`   // Model name served by the local endpoint
	DatabaseURL string `json:"database_url,omitempty"`  // PostgreSQL connection URL for result storage
	TimeoutSecs int    `json:"timeout_secs,omitempty"`  // Per-provider-call timeout in seconds
	Verbose     bool   `json:"verbose,omitempty"`       // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.QuestionCount < 0 {
		return fmt.Errorf("config error: 'question_count' must be non-negative")
	}
	if c.TimeoutSecs < 0 {
		return fmt.Errorf("config error: 'timeout_secs' must be non-negative")
	}

	switch c.Category {
	case "", "technical", "behavioral", "mixed":
	default:
		return fmt.Errorf("config error: 'category' must be technical, behavioral, or mixed")
	}

	if c.LocalURL != "" {
		u, err := url.Parse(c.LocalURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'local_url' is not a valid URL: %s", c.LocalURL)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Experience == "" {
		result.Experience = defaults.Experience
	}
	if result.Category == "" {
		result.Category = defaults.Category
	}
	if result.CandidateID == "" {
		result.CandidateID = defaults.CandidateID
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LocalURL == "" {
		result.LocalURL = defaults.LocalURL
	}
	if result.LocalModel == "" {
		result.LocalModel = defaults.LocalModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.QuestionCount == 0 {
		result.QuestionCount = defaults.QuestionCount
	}
	if result.TimeoutSecs == 0 {
		result.TimeoutSecs = defaults.TimeoutSecs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
