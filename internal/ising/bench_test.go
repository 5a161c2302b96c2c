package ising

import (
	"testing"

	"ising-ca/internal/core"
)

// BenchmarkSweep measures one full Monte Carlo pass over a 256×256 lattice.
func BenchmarkSweep(b *testing.B) {
	l, err := New(256, 256, 0.4)
	if err != nil {
		b.Fatalf("create lattice: %v", err)
	}
	rng := core.NewRNG(42)
	l.Randomize(rng)
	model := Hamiltonian{J: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sweep(l, model, rng, AcceptInverted)
	}
}

// BenchmarkTotalEnergy measures a full energy resummation of the same grid.
func BenchmarkTotalEnergy(b *testing.B) {
	l, err := New(256, 256, 0.4)
	if err != nil {
		b.Fatalf("create lattice: %v", err)
	}
	l.Randomize(core.NewRNG(42))
	model := Hamiltonian{J: 1, H: 0.1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = model.TotalEnergy(l)
	}
}
