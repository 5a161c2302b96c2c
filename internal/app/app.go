//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"ising-ca/internal/core"
	"ising-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a lattice simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter

	upColor   color.Color
	downColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	sweeps   int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:       sim,
		painter:   gp,
		upColor:   color.White,
		downColor: color.Black,
		scale:     scale,
		seed:      seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.sweeps = 0
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.sweeps++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current lattice and an energy readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.upColor, g.downColor, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("sweep %d  energy %.1f", g.sweeps, g.sim.Energy()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
