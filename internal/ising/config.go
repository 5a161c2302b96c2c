package ising

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls an Ising simulation run.
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Beta   float64 `yaml:"beta"`

	Coupling float64 `yaml:"coupling"`
	Field    float64 `yaml:"field"`

	Seed int64 `yaml:"seed"`

	// Acceptance names the stochastic acceptance rule: "inverted"
	// (default) or "metropolis". See AcceptanceRule.
	Acceptance string `yaml:"acceptance"`
}

// DefaultConfig returns the standard configuration: a 20x20 lattice at
// beta 1.0 with unit coupling and no external field.
func DefaultConfig() Config {
	return Config{
		Width:      20,
		Height:     20,
		Beta:       1.0,
		Coupling:   1.0,
		Field:      0.0,
		Seed:       1337,
		Acceptance: "inverted",
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["beta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Beta = parsed
		}
	}
	if v, ok := cfg["j"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Coupling = parsed
		}
	}
	if v, ok := cfg["field"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Field = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["acceptance"]; ok && v != "" {
		c.Acceptance = v
	}
	return c
}

// LoadFile reads a Config from a YAML file. Parsing starts from the
// defaults, so a partial file only overrides the keys it names.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("ising config: %w", err)
	}
	if c.Width < 1 || c.Height < 1 {
		return c, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	return c, nil
}
