package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"

	"ising-ca/internal/ising"
)

type result struct {
	beta   float64
	energy float64
}

func main() {
	steps := flag.Int("steps", 100, "sweeps to run per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	betaMin := flag.Float64("beta-min", 0.1, "lowest inverse temperature")
	betaMax := flag.Float64("beta-max", 1.0, "highest inverse temperature")
	count := flag.Int("count", 10, "number of scenarios across the beta range")
	width := flag.Int("width", 20, "lattice width")
	height := flag.Int("height", 20, "lattice height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	flag.Parse()

	base := ising.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed

	if _, err := ising.New(base.Width, base.Height, 0); err != nil {
		log.Fatalf("invalid lattice: %v", err)
	}

	jobs := make(chan float64)
	results := make(chan result, *count)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for beta := range jobs {
				cfg := base
				cfg.Beta = beta
				world, err := ising.NewWorld(cfg)
				if err != nil {
					continue
				}
				world.Reset(cfg.Seed)
				for s := 0; s < *steps; s++ {
					world.Step()
				}
				results <- result{beta: beta, energy: world.Energy()}
			}
		}()
	}

	for i := 0; i < *count; i++ {
		beta := *betaMin
		if *count > 1 {
			beta += (*betaMax - *betaMin) * float64(i) / float64(*count-1)
		}
		jobs <- beta
	}
	close(jobs)
	wg.Wait()
	close(results)

	var all []result
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].beta < all[j].beta })

	fmt.Printf("beta sweep: %d scenarios, %d sweeps each, %dx%d lattice, seed %d\n",
		len(all), *steps, base.Width, base.Height, base.Seed)
	for _, r := range all {
		fmt.Printf("  beta %.3f -> final energy %.2f\n", r.beta, r.energy)
	}
}
