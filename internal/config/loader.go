package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigErrorType categorizes configuration errors.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the config file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the config file could not be parsed.
	ConfigInvalid
)

// ConfigError represents a configuration loading failure.
type ConfigError struct {
	// Type categorizes the error.
	Type ConfigErrorType
	// Path is the config file path.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if the file
	// doesn't exist.
	LoadOrDefault(path string) (*Config, error)
}

// FileLoader implements Loader for file-based configuration.
type FileLoader struct{}

// NewLoader creates a new FileLoader.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigError{Type: ConfigNotFound, Path: path,
				Message: "configuration file not found", Cause: err}
		}
		return nil, &ConfigError{Type: ConfigInvalid, Path: path,
			Message: "failed to read configuration file", Cause: err}
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Type: ConfigInvalid, Path: path,
			Message: "invalid YAML syntax", Cause: err}
	}
	if cfg.Placeholders == nil {
		cfg.Placeholders = map[string]string{}
	}

	return cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if the file doesn't
// exist. An empty path always yields defaults.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := l.Load(path)
	if err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
