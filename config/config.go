// Package config provides configuration loading and management for the
// siquant CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete siquant configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Units  []UnitConfig `yaml:"units"`
}

// OutputConfig configures how results are printed
type OutputConfig struct {
	// Precision is the number of significant digits (default: 9)
	Precision int `yaml:"precision"`
	// Format selects "text" or "json" output (default: "text")
	Format string `yaml:"format"`
}

// UnitConfig declares a custom derived unit registered at startup
type UnitConfig struct {
	// Symbol is the unit symbol (e.g., "fur")
	Symbol string `yaml:"symbol"`
	// Name is the singular display name (e.g., "furlong")
	Name string `yaml:"name"`
	// Plural is the plural display name (defaults to Name)
	Plural string `yaml:"plural"`
	// Definition is a scale factor followed by a unit expression
	// (e.g., "201.168 m")
	Definition string `yaml:"definition"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Precision: 9,
			Format:    "text",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Precision < 1 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be between 1 and 17")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be \"text\" or \"json\"")
	}
	for i, u := range c.Units {
		if u.Symbol == "" {
			return fmt.Errorf("units[%d].symbol is required", i)
		}
		if u.Definition == "" {
			return fmt.Errorf("units[%d].definition is required", i)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Precision != 0 {
		c.Output.Precision = other.Output.Precision
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if len(other.Units) > 0 {
		c.Units = append(c.Units, other.Units...)
	}
}
