package app

import "flag"

// Config represents the command-line parameters shared by the interactive
// viewers.
type Config struct {
	Scale int
	SPS   int
	Seed  int64
	File  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 16, SPS: 30, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.SPS, "sps", c.SPS, "sweeps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for lattice reset")
	fs.StringVar(&c.File, "config", c.File, "optional YAML lattice config")
}
