package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the interactive viewers expect from a lattice
// simulation: a seeded reset, one sweep per Step, a row-major byte buffer
// of cell values for rendering, and the current total energy.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Energy() float64
}
