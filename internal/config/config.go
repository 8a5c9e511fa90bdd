package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario = "projectile"
	DefaultWidth    = 80
	DefaultHeight   = 24
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
)

type Config struct {
	Scenario string             `yaml:"scenario"`
	Dt       float64            `yaml:"dt"`
	MaxTime  float64            `yaml:"max_time"`
	Rate     float64            `yaml:"rate"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	View     ViewConfig         `yaml:"view"`
	LogLevel string             `yaml:"log_level"`
}

type ViewConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Theme  string `yaml:"theme"`
	Graphs bool   `yaml:"graphs"`
}

// DefaultConfig leaves Dt at zero so each scenario runs at its own step.
func DefaultConfig() *Config {
	return &Config{
		Scenario: DefaultScenario,
		View: ViewConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Theme:  DefaultTheme,
			Graphs: true,
		},
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.Scenario == "" {
		return fmt.Errorf("scenario must be set")
	}
	if !(c.Dt >= 0) {
		return fmt.Errorf("dt must not be negative, got %g", c.Dt)
	}
	if !(c.MaxTime >= 0) {
		return fmt.Errorf("max_time must not be negative, got %g", c.MaxTime)
	}
	if !(c.Rate >= 0) {
		return fmt.Errorf("rate must not be negative, got %g", c.Rate)
	}
	if c.View.Width < 10 || c.View.Height < 5 {
		return fmt.Errorf("view must be at least 10x5, got %dx%d", c.View.Width, c.View.Height)
	}
	return nil
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	if c.Params != nil {
		out.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			out.Params[k] = v
		}
	}
	return &out
}
