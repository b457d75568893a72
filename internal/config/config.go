package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lifesim/internal/patterns"
)

const (
	DefaultRows        = 50
	DefaultCols        = 75
	DefaultGenerations = 500
	DefaultDelayMs     = 75
	DefaultKernel      = "loop"
)

// Kernels lists the accepted kernel names.
var Kernels = []string{"loop", "shift", "parallel", "fft"}

type Config struct {
	Name           string      `yaml:"name,omitempty"`
	Rows           int         `yaml:"rows"`
	Cols           int         `yaml:"cols"`
	Generations    int         `yaml:"generations"`
	DelayMs        int         `yaml:"delay_ms"`
	Kernel         string      `yaml:"kernel"`
	Workers        int         `yaml:"workers"`
	Seed           int64       `yaml:"seed"`
	Density        float64     `yaml:"density"`
	StopWhenStable bool        `yaml:"stop_when_stable"`
	Placements     []Placement `yaml:"placements"`
}

// Placement puts a named pattern (or a .cells file) at (row, col).
type Placement struct {
	Pattern string `yaml:"pattern,omitempty"`
	File    string `yaml:"file,omitempty"`
	Row     int    `yaml:"row"`
	Col     int    `yaml:"col"`
	FlipH   bool   `yaml:"flip_h,omitempty"`
	FlipV   bool   `yaml:"flip_v,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		Generations: DefaultGenerations,
		DelayMs:     DefaultDelayMs,
		Kernel:      DefaultKernel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks dimensions, density, kernel and placements.
func (c *Config) Validate() error {
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("grid dimensions must be non-negative, got %dx%d", c.Rows, c.Cols)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got %d", c.Generations)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be in [0,1], got %f", c.Density)
	}
	if !knownKernel(c.Kernel) {
		return fmt.Errorf("unknown kernel: %s (available: %v)", c.Kernel, Kernels)
	}
	for i, p := range c.Placements {
		switch {
		case p.Pattern != "" && p.File != "":
			return fmt.Errorf("placement %d: pattern and file are mutually exclusive", i)
		case p.Pattern != "":
			if _, err := patterns.Get(p.Pattern); err != nil {
				return fmt.Errorf("placement %d: %w", i, err)
			}
		case p.File == "":
			return fmt.Errorf("placement %d: pattern or file required", i)
		}
	}
	return nil
}

func knownKernel(name string) bool {
	for _, k := range Kernels {
		if k == name {
			return true
		}
	}
	return false
}
