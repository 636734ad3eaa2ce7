// Package config loads the Breza user configuration from ~/.breza.
// A missing config file is normal; every accessor fills in defaults, so
// callers never check for nil sub-sections.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfig holds all Breza configuration from ~/.breza/config.yaml.
type UserConfig struct {
	// Theme for the TUI: "light", "dark", or "auto".
	Theme string `yaml:"theme,omitempty"`

	// DataDir overrides where the session mirror and order database live.
	// Default: ~/.breza
	DataDir string `yaml:"data_dir,omitempty"`

	// Logging configuration.
	Logging *LoggingConfig `yaml:"logging,omitempty"`
}

// DefaultDir returns the ~/.breza directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".breza"
	}
	return filepath.Join(home, ".breza")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load reads the config file at path. A missing file yields an empty
// config and no error; a present but unparseable file is an error.
func Load(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg UserConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// GetTheme returns the configured theme, defaulting to "auto".
func (c *UserConfig) GetTheme() string {
	if c != nil && c.Theme != "" {
		return c.Theme
	}
	return "auto"
}

// GetDataDir returns the data directory, defaulting to ~/.breza.
func (c *UserConfig) GetDataDir() string {
	if c != nil && c.DataDir != "" {
		return c.DataDir
	}
	return DefaultDir()
}

// GetLogging returns logging settings with defaults.
func (c *UserConfig) GetLogging() LoggingConfig {
	if c != nil && c.Logging != nil {
		cfg := *c.Logging
		if cfg.Level == "" {
			cfg.Level = "info"
		}
		if cfg.File == "" {
			cfg.File = filepath.Join(c.GetDataDir(), "breza.log")
		}
		return cfg
	}
	return LoggingConfig{
		Level: "info",
		File:  filepath.Join(c.GetDataDir(), "breza.log"),
	}
}
