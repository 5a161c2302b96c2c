package ising

import (
	"errors"
	"fmt"

	"ising-ca/internal/core"
)

// ErrInvalidDimensions is returned when a lattice is constructed with a
// non-positive width or height.
var ErrInvalidDimensions = errors.New("ising: lattice dimensions must be positive")

// Site is one lattice cell: a spin plus the cell's two stored bonds.
//
// Each undirected bond between adjacent sites is stored exactly once, from
// the south/east side pointing to its north and west neighbors. Summing
// per-site bond terms therefore visits every bond once and never double
// counts.
type Site struct {
	State     Spin
	Neighbors [2]int // north, west (toroidal wrap)
}

// Lattice is a toroidal 2D grid of spin sites in row-major order together
// with its inverse temperature. It is the sole mutable state of a
// simulation run and is always passed explicitly; nothing in this package
// holds one in ambient scope.
type Lattice struct {
	width  int
	height int
	beta   float64
	sites  []Site
}

// New builds a width×height lattice with every spin up and toroidal
// adjacency precomputed. Row 0 wraps to the last row and column 0 to the
// last column, so 1-wide or 1-tall lattices store self-bonds. Non-positive
// dimensions are rejected.
func New(width, height int, beta float64) (*Lattice, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	sites := make([]Site, 0, width*height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			north := ((row-1+height)%height)*width + col
			west := row*width + (col-1+width)%width
			sites = append(sites, Site{State: SpinUp, Neighbors: [2]int{north, west}})
		}
	}
	return &Lattice{width: width, height: height, beta: beta, sites: sites}, nil
}

// Width returns the number of columns.
func (l *Lattice) Width() int { return l.width }

// Height returns the number of rows.
func (l *Lattice) Height() int { return l.height }

// Beta returns the inverse temperature.
func (l *Lattice) Beta() float64 { return l.beta }

// Len returns the number of sites.
func (l *Lattice) Len() int { return len(l.sites) }

// Index returns the row-major site index for (row, col).
func (l *Lattice) Index(row, col int) int { return row*l.width + col }

// Site returns a copy of the site at idx. An out-of-range index is a
// programming error and panics.
func (l *Lattice) Site(idx int) Site { return l.sites[idx] }

// Spin returns the spin at idx.
func (l *Lattice) Spin(idx int) Spin { return l.sites[idx].State }

// SetSpin overwrites the spin at idx.
func (l *Lattice) SetSpin(idx int, s Spin) { l.sites[idx].State = s }

// Flip toggles the spin at idx between up and down.
func (l *Lattice) Flip(idx int) {
	l.sites[idx].State = l.sites[idx].State.Opposite()
}

// Randomize sets every site independently to up or down with equal
// probability using the supplied random source. All other lattice state is
// untouched.
func (l *Lattice) Randomize(rng *core.RNG) {
	for i := range l.sites {
		if rng.Bool() {
			l.sites[i].State = SpinUp
		} else {
			l.sites[i].State = SpinDown
		}
	}
}
