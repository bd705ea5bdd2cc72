package config

import (
	"os"
	"path/filepath"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database    string // Main SQLite database
	Credentials string // Saved remote credential
	LogDir      string // Log directory
	Exports     string // Export output directory
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database:    filepath.Join(cfg.BaseDir, "jobflow.db"),
		Credentials: filepath.Join(cfg.BaseDir, "credentials.json"),
		LogDir:      cfg.BaseDir,
		Exports:     filepath.Join(cfg.BaseDir, "exports"),
	}
}

// DefaultBaseDir returns the default base directory (~/.jobflow).
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobflow"
	}
	return filepath.Join(home, ".jobflow")
}
