package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"ising-ca/internal/core"
	"ising-ca/internal/ising"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := ising.DefaultConfig()

	configPath := flag.String("config", "", "optional YAML lattice config")
	seed := flag.Int64("seed", cfg.Seed, "seed for lattice reset")
	sps := flag.Int("sps", 10, "sweeps per second")
	flag.Parse()

	if *configPath != "" {
		loaded, err := ising.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Seed = *seed

	world, err := ising.NewWorld(cfg)
	if err != nil {
		log.Fatalf("create world: %v", err)
	}
	world.Reset(*seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	pacer := core.NewFixedStep(*sps)
	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	paused := false
	sweeps := 0
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'r':
					world.Reset(*seed)
					sweeps = 0
				case ev.Rune() == 's':
					world.Reset(time.Now().UnixNano())
					sweeps = 0
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-frame.C:
			if !paused && pacer.Tick() {
				world.Step()
				sweeps++
			}
			draw(screen, world, sweeps, paused)
		}
	}
}

func draw(screen tcell.Screen, world *ising.World, sweeps int, paused bool) {
	screen.Clear()

	size := world.Size()
	cells := world.Cells()
	up := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	down := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			ch := ' '
			style := down
			if cells[y*size.W+x] != 0 {
				ch = '+'
				style = up
			}
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	status := fmt.Sprintf("sweep %d  energy %.1f", sweeps, world.Energy())
	if paused {
		status += "  [paused]"
	}
	status += "  (space pause, r reset, s reseed, q quit)"
	for i, r := range status {
		screen.SetContent(i, size.H, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
