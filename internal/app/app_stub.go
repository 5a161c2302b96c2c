//go:build !ebiten

package app

import (
	"fmt"

	"ising-ca/internal/core"
)

// Game is a placeholder mirroring the API of the GUI build.
type Game struct{}

// New panics: the GUI viewer only exists under the ebiten build tag.
func New(core.Sim, int, int64) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Reset does nothing in the headless build.
func (g *Game) Reset(int64) {}

// Update reports that the GUI build tag is missing.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update requires building with the 'ebiten' tag")
}

// Draw does nothing in the headless build.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
