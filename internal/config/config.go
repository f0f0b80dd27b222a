// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Paths
	Job      string `json:"job,omitempty"`      // Path to job description text file
	Resumes  string `json:"resumes,omitempty"`  // Directory of uploaded resume files
	Taxonomy string `json:"taxonomy,omitempty"` // Path to skill taxonomy file
	Synonyms string `json:"synonyms,omitempty"` // Optional synonym table JSON (defaults built in)
	Output   string `json:"output,omitempty"`   // Path for the exported CSV table

	// Embedding backend
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`  // Enables the semantic backend when set
	EmbeddingModel string `json:"embedding_model,omitempty"` // Override the default embedding model

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; runs are persisted when set

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed breakdowns per candidate
	Port    int  `json:"port,omitempty"`    // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// FromEnv fills a Config from environment variables, used as the lowest-
// precedence defaults layer.
func FromEnv() Config {
	return Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
	}
}

// Validate checks that the configuration has valid values. Required-field
// checks belong to CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	for _, p := range []struct{ name, path string }{
		{"job", c.Job},
		{"taxonomy", c.Taxonomy},
		{"synonyms", c.Synonyms},
	} {
		if p.path == "" {
			continue
		}
		if _, err := os.Stat(p.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", p.name, p.path)
		}
	}

	if c.Resumes != "" {
		info, err := os.Stat(c.Resumes)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: resumes directory not found: %s", c.Resumes)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: resumes path is not a directory: %s", c.Resumes)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under CLI flags and env vars
// over both.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Resumes == "" {
		result.Resumes = defaults.Resumes
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Synonyms == "" {
		result.Synonyms = defaults.Synonyms
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	// Bool fields: cannot distinguish unset from false, CLI flags always win.

	return result
}
