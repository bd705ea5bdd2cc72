// Package config handles application configuration management.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all JobFlow data (~/.jobflow)
	BaseDir string

	// Remote account service settings
	API APIConfig
}

// APIConfig holds remote service settings.
type APIConfig struct {
	// BaseURL of the account service, e.g. https://api.jobflow.app
	BaseURL string
}

// Load reads configuration from environment variables and ensures the data
// directories exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if home := os.Getenv("JOBFLOW_HOME"); home != "" {
		cfg.BaseDir = home
	}
	if url := os.Getenv("JOBFLOW_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		filepath.Join(cfg.BaseDir, "exports"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
