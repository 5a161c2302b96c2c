package ising

import (
	"math"

	"ising-ca/internal/core"
)

// AcceptanceRule selects which comparison the stochastic acceptance test
// uses for moves with a positive flip delta.
type AcceptanceRule uint8

const (
	// AcceptInverted flips when the uniform draw EXCEEDS exp(-beta*delta).
	// This reproduces the simulator's historical behavior: a larger draw
	// makes a flip MORE likely, the reverse of the textbook Metropolis
	// comparison. Kept as the default for run-for-run parity.
	AcceptInverted AcceptanceRule = iota
	// AcceptMetropolis flips when the draw falls below exp(-beta*delta),
	// the textbook convention.
	AcceptMetropolis
)

// ParseAcceptance maps a config string to an AcceptanceRule. Unknown values
// fall back to the inverted rule.
func ParseAcceptance(v string) AcceptanceRule {
	if v == "metropolis" {
		return AcceptMetropolis
	}
	return AcceptInverted
}

// Sweep performs one Monte Carlo pass over the lattice. Every site is
// visited exactly once in row-major storage order, and each flip decision
// sees the mutations made earlier in the same pass. A non-positive delta
// flips unconditionally; otherwise a fresh uniform draw from rng decides
// per the acceptance rule.
func Sweep(l *Lattice, model Hamiltonian, rng *core.RNG, rule AcceptanceRule) {
	for i := range l.sites {
		delta := model.FlipDelta(l, i)
		if delta <= 0 || accept(rule, rng.Float64(), math.Exp(-l.beta*delta)) {
			l.Flip(i)
		}
	}
}

func accept(rule AcceptanceRule, u, threshold float64) bool {
	if rule == AcceptMetropolis {
		return u < threshold
	}
	return u > threshold
}

// World couples a lattice with its Hamiltonian, acceptance rule and random
// source so the viewers and sweep tools can drive it through the core.Sim
// contract.
type World struct {
	cfg     Config
	rule    AcceptanceRule
	lattice *Lattice
	model   Hamiltonian
	rng     *core.RNG
	display []uint8
}

// NewWorld builds a World from the provided configuration. The lattice
// starts all-up; call Reset to randomize it.
func NewWorld(cfg Config) (*World, error) {
	lat, err := New(cfg.Width, cfg.Height, cfg.Beta)
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		rule:    ParseAcceptance(cfg.Acceptance),
		lattice: lat,
		model:   Hamiltonian{J: cfg.Coupling, H: cfg.Field},
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, lat.Len()),
	}
	w.rebuildDisplay()
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ising" }

// Size reports the lattice dimensions.
func (w *World) Size() core.Size {
	return core.Size{W: w.lattice.width, H: w.lattice.height}
}

// Cells exposes the display buffer: 1 for spin up, 0 for spin down.
func (w *World) Cells() []uint8 { return w.display }

// Lattice exposes the underlying lattice.
func (w *World) Lattice() *Lattice { return w.lattice }

// Model exposes the energy model.
func (w *World) Model() Hamiltonian { return w.model }

// Energy returns the total energy of the current lattice state.
func (w *World) Energy() float64 { return w.model.TotalEnergy(w.lattice) }

// Reset rebuilds the random source from the seed (falling back to the
// configured seed when zero) and randomizes every spin with it. The same
// source keeps feeding the acceptance draws of subsequent sweeps, so a
// fixed seed reproduces the full run.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	w.lattice.Randomize(w.rng)
	w.rebuildDisplay()
}

// Step runs one full Monte Carlo sweep.
func (w *World) Step() {
	Sweep(w.lattice, w.model, w.rng, w.rule)
	w.rebuildDisplay()
}

func (w *World) rebuildDisplay() {
	for i := range w.lattice.sites {
		if w.lattice.sites[i].State == SpinUp {
			w.display[i] = 1
		} else {
			w.display[i] = 0
		}
	}
}
