// Package config loads the optional inview.yaml scene description used by
// the inview CLI.
package config

import (
	goerrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/inview/pkg/geometry"
)

// Config represents the optional inview.yaml scene file.
type Config struct {
	Viewport           SizeConfig   `yaml:"viewport"`
	Content            SizeConfig   `yaml:"content,omitempty"`
	MaxChecksPerSecond int          `yaml:"max_checks_per_second,omitempty"`
	Nodes              []NodeConfig `yaml:"nodes"`
	Timeline           []Step       `yaml:"timeline"`
}

// SizeConfig holds a width/height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size converts the config value to a geometry.Size.
func (s SizeConfig) Size() geometry.Size {
	return geometry.Size{Width: s.Width, Height: s.Height}
}

// NodeConfig positions one named node in content coordinates.
type NodeConfig struct {
	Name   string  `yaml:"name"`
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Frame converts the config value to a geometry.Rect.
func (n NodeConfig) Frame() geometry.Rect {
	return geometry.RectFromLTWH(n.Left, n.Top, n.Width, n.Height)
}

// Step is one scroll target in the replayed timeline.
type Step struct {
	X float64 `yaml:"x,omitempty"`
	Y float64 `yaml:"y"`
}

// Default returns the built-in demo scene: three stacked sections in a
// tall document, scrolled top to bottom and back.
func Default() *Config {
	return &Config{
		Viewport: SizeConfig{Width: 800, Height: 600},
		Content:  SizeConfig{Width: 800, Height: 2400},
		Nodes: []NodeConfig{
			{Name: "hero", Left: 0, Top: 0, Width: 800, Height: 400},
			{Name: "feature", Left: 100, Top: 900, Width: 600, Height: 300},
			{Name: "footer", Left: 0, Top: 2200, Width: 800, Height: 200},
		},
		Timeline: []Step{
			{Y: 300}, {Y: 700}, {Y: 1100}, {Y: 1700}, {Y: 2400}, {Y: 0},
		},
	}
}

// LoadOptional reads inview.yaml from dir if present; a missing file
// yields the default scene.
func LoadOptional(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "inview.yaml"))
}

// Load reads the scene file at path. A missing file yields the default
// scene; a malformed one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if goerrors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the scene for values the surface cannot represent.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have positive dimensions, got %gx%g",
			c.Viewport.Width, c.Viewport.Height)
	}
	seen := make(map[string]bool, len(c.Nodes))
	for i, n := range c.Nodes {
		if n.Name == "" {
			return fmt.Errorf("nodes[%d]: name is required", i)
		}
		if seen[n.Name] {
			return fmt.Errorf("nodes[%d]: duplicate name %q", i, n.Name)
		}
		seen[n.Name] = true
		if n.Width < 0 || n.Height < 0 {
			return fmt.Errorf("node %q: negative dimensions", n.Name)
		}
	}
	return nil
}
