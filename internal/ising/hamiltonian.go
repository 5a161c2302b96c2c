package ising

// Hamiltonian is the energy model: ferromagnetic coupling strength J and
// external field strength H. Both are fixed at construction; the model
// holds no lattice state of its own.
type Hamiltonian struct {
	J float64 // coupling; positive favors aligned neighbors
	H float64 // external field bias
}

// SiteEnergy returns the energy contribution of one site: the field term
// (-H for up, +H for down) minus J for each stored bond whose neighbor
// matches the site's spin. Because every bond is stored once, summing over
// all sites counts each undirected bond exactly once.
func (h Hamiltonian) SiteEnergy(l *Lattice, idx int) float64 {
	site := l.sites[idx]
	energy := h.fieldTerm(site.State)
	for _, n := range site.Neighbors {
		if l.sites[n].State == site.State {
			energy -= h.J
		}
	}
	return energy
}

// TotalEnergy sums SiteEnergy over every site index.
func (h Hamiltonian) TotalEnergy(l *Lattice) float64 {
	var energy float64
	for i := range l.sites {
		energy += h.SiteEnergy(l, i)
	}
	return energy
}

// FlipDelta returns the difference between the site's current energy term
// and the term it would have with its spin flipped, using only the site's
// own field contribution and two stored bonds. The lattice is not mutated
// and no resummation happens; the sweep flips unconditionally when the
// result is <= 0.
func (h Hamiltonian) FlipDelta(l *Lattice, idx int) float64 {
	site := l.sites[idx]
	current := h.fieldTerm(site.State)
	flipped := -current
	for _, n := range site.Neighbors {
		if l.sites[n].State == site.State {
			current -= h.J
		} else {
			flipped -= h.J
		}
	}
	return current - flipped
}

func (h Hamiltonian) fieldTerm(s Spin) float64 {
	if s == SpinUp {
		return -h.H
	}
	return h.H
}
