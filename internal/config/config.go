// Package config loads gols defaults from a yaml config file.
//
// The file provides defaults for the listing flags; CLI flags always take
// precedence. A missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the configurable listing defaults.
type Config struct {
	// All includes hidden entries by default (-a).
	All bool `yaml:"all"`

	// Long selects the long listing format by default (-l).
	Long bool `yaml:"long"`

	// Recursive descends into subdirectories by default (-R).
	Recursive bool `yaml:"recursive"`

	// HumanReadable scales sizes in long output by default (-h).
	HumanReadable bool `yaml:"human_readable"`

	// LogLevel sets the verbosity of --verbose tracing
	// (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		All:           false,
		Long:          false,
		Recursive:     false,
		HumanReadable: false,
		LogLevel:      "info",
	}
}

// Load loads configuration from the given file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// LoadDefault loads configuration from the standard per-user location:
// $XDG_CONFIG_HOME/gols/config.yaml, falling back to
// ~/.config/gols/config.yaml. If no home directory can be determined,
// defaults are returned.
func LoadDefault() (*Config, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		dir = filepath.Join(home, ".config")
	}
	return Load(filepath.Join(dir, "gols", "config.yaml"))
}

// MergeWithFlags applies CLI flag values over the config. Only non-nil
// pointers are applied, so unchanged flags leave config values in place.
func (c *Config) MergeWithFlags(all, long, recursive, human *bool, logLevel *string) {
	if all != nil {
		c.All = *all
	}
	if long != nil {
		c.Long = *long
	}
	if recursive != nil {
		c.Recursive = *recursive
	}
	if human != nil {
		c.HumanReadable = *human
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}
