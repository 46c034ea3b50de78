// Package config provides configuration loading for the workstation.
// It handles loading configuration from YAML files and provides default
// values matching the built-in look.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the workstation configuration loaded from YAML
type Config struct {
	// Window parameters
	Window struct {
		// Width and Height of the workstation window in pixels
		Width  int `yaml:"width"`
		Height int `yaml:"height"`

		// TargetFPS caps the render loop rate
		TargetFPS int `yaml:"targetFPS"`
	} `yaml:"window"`

	// Clipping parameters
	Clipping struct {
		// DefaultPercent is the plane position when an axis is first enabled
		DefaultPercent float64 `yaml:"defaultPercent"`

		// PlaneMargin scales the plane visual beyond the anatomy bounds
		PlaneMargin float64 `yaml:"planeMargin"`

		// PlaneOpacity is the alpha of plane visuals, in [0,1]
		PlaneOpacity float64 `yaml:"planeOpacity"`
	} `yaml:"clipping"`

	// MPR parameters
	MPR struct {
		// DefaultPercent is the initial position of each slice plane
		DefaultPercent float64 `yaml:"defaultPercent"`
	} `yaml:"mpr"`

	// Colors holds per-axis plane colors as #RRGGBB strings
	Colors struct {
		X string `yaml:"x"`
		Y string `yaml:"y"`
		Z string `yaml:"z"`
	} `yaml:"colors"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Window.Width = 1400
	cfg.Window.Height = 900
	cfg.Window.TargetFPS = 60

	cfg.Clipping.DefaultPercent = 50
	cfg.Clipping.PlaneMargin = 1.3
	cfg.Clipping.PlaneOpacity = 0.3

	cfg.MPR.DefaultPercent = 50

	// Matches the original palette: red X, cyan Y, green Z
	cfg.Colors.X = "#FF6B6B"
	cfg.Colors.Y = "#4ECDC4"
	cfg.Colors.Z = "#95E1D3"

	return cfg
}

// LoadConfig loads configuration from the given YAML file, filling in
// defaults for missing values. A missing file is not an error; the
// defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Clipping.DefaultPercent < 0 || c.Clipping.DefaultPercent > 100 {
		return fmt.Errorf("clipping defaultPercent %v out of range [0,100]", c.Clipping.DefaultPercent)
	}
	if c.MPR.DefaultPercent < 0 || c.MPR.DefaultPercent > 100 {
		return fmt.Errorf("mpr defaultPercent %v out of range [0,100]", c.MPR.DefaultPercent)
	}
	if c.Clipping.PlaneMargin <= 0 {
		return fmt.Errorf("planeMargin must be positive, got %v", c.Clipping.PlaneMargin)
	}
	if c.Clipping.PlaneOpacity < 0 || c.Clipping.PlaneOpacity > 1 {
		return fmt.Errorf("planeOpacity %v out of range [0,1]", c.Clipping.PlaneOpacity)
	}
	return nil
}
