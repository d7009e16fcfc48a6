// Package config resolves ambient settings from an optional YAML file and
// TAGCOUNT_* environment variables. The three positional arguments of the
// CLI are not part of it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration
type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	History  HistoryConfig `yaml:"history"`
	Progress bool          `yaml:"progress"`
}

// LoggingConfig controls structured logging level and output format
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// HistoryConfig controls the SQLite run history
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a YAML config file (if path is non-empty) and applies
// environment-variable overrides on top of the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		History: HistoryConfig{
			Path: DefaultHistoryPath(),
		},
	}
}

// DefaultHistoryPath returns the history database under the XDG data directory
func DefaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tagcount", "history.db")
}

// applyEnvOverrides reads TAGCOUNT_* environment variables
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TAGCOUNT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TAGCOUNT_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	// Setting a database path turns history on
	if v := os.Getenv("TAGCOUNT_DB"); v != "" {
		cfg.History.Path = v
		cfg.History.Enabled = true
	}
	if v := os.Getenv("TAGCOUNT_PROGRESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Progress = b
		}
	}
}
