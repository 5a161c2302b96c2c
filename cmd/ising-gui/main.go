//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"ising-ca/internal/app"
	"ising-ca/internal/ising"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := ising.DefaultConfig()
	if cfg.File != "" {
		loaded, err := ising.LoadFile(cfg.File)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		simCfg = loaded
	}
	simCfg.Seed = cfg.Seed

	world, err := ising.NewWorld(simCfg)
	if err != nil {
		log.Fatalf("create world: %v", err)
	}
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("ising-ca")
	ebiten.SetTPS(cfg.SPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
