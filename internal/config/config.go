// Package config loads the optional skel configuration file.
//
// The file lives at $XDG_CONFIG_HOME/skel/config.yaml (or the OS
// equivalent) and supplies defaults that the command line can override.
package config

import (
	"os"
	"path/filepath"
)

// Config represents the global skel configuration.
type Config struct {
	// Template is the default template name or path for init.
	Template string `yaml:"template"`
	// Placeholders are default placeholder overrides, merged below
	// command-line --var values.
	Placeholders map[string]string `yaml:"placeholders"`
	// Output configures display settings.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `yaml:"color"`
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() *Config {
	return &Config{
		Template:     "",
		Placeholders: map[string]string{},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// DefaultPath returns the default config file path, or "" if the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "skel", "config.yaml")
}
