package main

import (
	"flag"
	"fmt"
	"log"

	"ising-ca/internal/core"
	"ising-ca/internal/ising"
)

func main() {
	cfg := ising.DefaultConfig()

	configPath := flag.String("config", "", "optional YAML config file")
	width := flag.Int("width", cfg.Width, "lattice width")
	height := flag.Int("height", cfg.Height, "lattice height")
	beta := flag.Float64("beta", cfg.Beta, "inverse temperature")
	coupling := flag.Float64("j", cfg.Coupling, "ferromagnetic coupling strength")
	field := flag.Float64("field", cfg.Field, "external field strength")
	seed := flag.Int64("seed", cfg.Seed, "random seed")
	steps := flag.Int("steps", 100, "number of Monte Carlo sweeps")
	acceptance := flag.String("acceptance", cfg.Acceptance, "acceptance rule: inverted or metropolis")
	flag.Parse()

	if *configPath != "" {
		loaded, err := ising.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	// Explicit flags override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "beta":
			cfg.Beta = *beta
		case "j":
			cfg.Coupling = *coupling
		case "field":
			cfg.Field = *field
		case "seed":
			cfg.Seed = *seed
		case "acceptance":
			cfg.Acceptance = *acceptance
		}
	})

	lattice, err := ising.New(cfg.Width, cfg.Height, cfg.Beta)
	if err != nil {
		log.Fatalf("create lattice: %v", err)
	}
	model := ising.Hamiltonian{J: cfg.Coupling, H: cfg.Field}
	rule := ising.ParseAcceptance(cfg.Acceptance)
	rng := core.NewRNG(cfg.Seed)

	observe := func() {
		fmt.Println(model.TotalEnergy(lattice))
		fmt.Print(lattice.Render())
	}

	observe()
	lattice.Randomize(rng)
	observe()
	for i := 0; i < *steps; i++ {
		ising.Sweep(lattice, model, rng, rule)
		observe()
	}
}
