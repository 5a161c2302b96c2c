package ising

import "strings"

// Render produces the console picture of the lattice: a dash border, then
// for each row a |g|g|...| line followed by another border, then a blank
// line. Purely observational.
func (l *Lattice) Render() string {
	border := strings.Repeat("-", l.width*2+1)

	var b strings.Builder
	b.Grow((len(border) + 1) * (2*l.height + 2))
	b.WriteString(border)
	b.WriteByte('\n')
	for row := 0; row < l.height; row++ {
		for col := 0; col < l.width; col++ {
			b.WriteByte('|')
			b.WriteByte(l.sites[l.Index(row, col)].State.Glyph())
		}
		b.WriteString("|\n")
		b.WriteString(border)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
