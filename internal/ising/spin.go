package ising

// Spin is the binary state of a single lattice site.
type Spin uint8

const (
	// SpinUp is the orientation every freshly built lattice starts in.
	SpinUp Spin = iota
	// SpinDown is the opposite orientation.
	SpinDown
)

// Opposite returns the flipped orientation.
func (s Spin) Opposite() Spin {
	if s == SpinUp {
		return SpinDown
	}
	return SpinUp
}

// Glyph returns the console representation: '+' for up, a blank for down.
func (s Spin) Glyph() byte {
	if s == SpinUp {
		return '+'
	}
	return ' '
}

// String implements fmt.Stringer.
func (s Spin) String() string {
	if s == SpinUp {
		return "Up"
	}
	return "Down"
}
