// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents settings that can be loaded from a JSON file and
// overridden by environment variables or CLI flags. All fields are optional;
// missing values use defaults.
type Config struct {
	// Inputs
	Resume  string `json:"resume,omitempty"`  // Path to resume file (.tex or .txt)
	Job     string `json:"job,omitempty"`     // Path to job posting text file
	JobURL  string `json:"job_url,omitempty"` // URL to fetch job posting from
	Output  string `json:"output,omitempty"`  // Path to write the rewritten resume
	PDFPath string `json:"pdf,omitempty"`     // Path to write the compiled PDF

	// Behavior
	APIKey         string `json:"api_key,omitempty"`          // Gemini API key
	Model          string `json:"model,omitempty"`            // Override for the standard model tier
	UseBrowser     bool   `json:"use_browser,omitempty"`      // Use headless browser for SPA sites
	Verbose        bool   `json:"verbose,omitempty"`          // Print detailed debug information
	CacheSize      int    `json:"cache_size,omitempty"`       // Document metadata cache capacity
	MaxPromptChars int    `json:"max_prompt_chars,omitempty"` // Bound on resume text sent to the model

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port
}

// envAPIKey is consulted when the config file carries no key.
const envAPIKey = "GEMINI_API_KEY"

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

// ResolveAPIKey returns the configured API key, falling back to the
// GEMINI_API_KEY environment variable.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(envAPIKey)
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	if c.MaxPromptChars < 0 {
		return fmt.Errorf("config error: 'max_prompt_chars' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.PDFPath == "" {
		result.PDFPath = defaults.PDFPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Int fields: use default if zero
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}
	if result.MaxPromptChars == 0 {
		result.MaxPromptChars = defaults.MaxPromptChars
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
