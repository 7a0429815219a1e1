// Package config provides configuration loading and management for atlasgeo.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SamplePoint is one query coordinate to assign to its nearest region.
type SamplePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Config represents the application configuration loaded from YAML
type Config struct {
	// Aggregation parameters
	Aggregation struct {
		// Metric selects the named reduction applied over neighborhood
		// samples. Must be "mean" or "median".
		Metric string `yaml:"metric"`
	} `yaml:"aggregation"`

	// Sampling parameters
	Sampling struct {
		// Dilation is the half-width in voxels of the cubic neighborhood
		// expanded around each sample point.
		Dilation int `yaml:"dilation"`

		// WorldSpace controls whether centroids are reported in world
		// coordinates (via the atlas affine) instead of voxel indices.
		WorldSpace bool `yaml:"worldSpace"`

		// Points are the world-space query coordinates to assign to
		// regions. When empty, the demo driver generates its own.
		Points []SamplePoint `yaml:"points"`
	} `yaml:"sampling"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Aggregation.Metric = "mean"

	cfg.Sampling.Dilation = 1
	cfg.Sampling.WorldSpace = true

	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
