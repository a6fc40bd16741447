// Package config loads the tool configuration from .mcshader/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete mcshader configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Navigation NavigationConfig `json:"navigation" mapstructure:"navigation"`
	Logging    LoggingConfig    `json:"logging" mapstructure:"logging"`
}

// NavigationConfig contains navigation engine configuration
type NavigationConfig struct {
	// MaxMatches caps the number of locations returned per request.
	// Zero means unlimited.
	MaxMatches int `json:"maxMatches" mapstructure:"maxMatches"`
	// FileExtensions lists the shader file extensions the CLI accepts.
	FileExtensions []string `json:"fileExtensions" mapstructure:"fileExtensions"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Navigation: NavigationConfig{
			MaxMatches:     0,
			FileExtensions: []string{".fsh", ".vsh", ".gsh", ".csh", ".glsl"},
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .mcshader/config.json under rootDir.
// A missing config file is not an error; defaults apply.
func LoadConfig(rootDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(rootDir, ".mcshader"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to .mcshader/config.json
func (c *Config) Save(rootDir string) error {
	dir := filepath.Join(rootDir, ".mcshader")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Navigation.MaxMatches < 0 {
		return &ConfigError{Field: "navigation.maxMatches", Message: "must be >= 0"}
	}
	switch c.Logging.Format {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "must be human or json"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
