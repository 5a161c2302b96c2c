package ising

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ising-ca/internal/core"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		l, err := New(dims[0], dims[1], 1.0)
		require.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
		require.Nil(t, l)
	}
}

func TestNewBuildsRowMajorAllUp(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {4, 4}, {3, 5}} {
		w, h := dims[0], dims[1]
		l, err := New(w, h, 0.5)
		require.NoError(t, err)
		require.Equal(t, w*h, l.Len())
		require.Equal(t, w, l.Width())
		require.Equal(t, h, l.Height())
		require.Equal(t, 0.5, l.Beta())
		for i := 0; i < l.Len(); i++ {
			site := l.Site(i)
			require.Equal(t, SpinUp, site.State, "site %d of %dx%d", i, w, h)
			for _, n := range site.Neighbors {
				require.GreaterOrEqual(t, n, 0)
				require.Less(t, n, w*h)
			}
		}
	}
}

func TestToroidalAdjacency(t *testing.T) {
	const w, h = 4, 3
	l, err := New(w, h, 1.0)
	require.NoError(t, err)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			site := l.Site(l.Index(row, col))
			north := ((row-1+h)%h)*w + col
			west := row*w + (col-1+w)%w
			require.Equal(t, [2]int{north, west}, site.Neighbors, "site (%d,%d)", row, col)
		}
	}
}

func TestDegenerateDimensionsSelfBond(t *testing.T) {
	single, err := New(1, 1, 1.0)
	require.NoError(t, err)
	require.Equal(t, [2]int{0, 0}, single.Site(0).Neighbors)

	// One column: every west bond wraps back onto the site itself.
	column, err := New(1, 3, 1.0)
	require.NoError(t, err)
	for i := 0; i < column.Len(); i++ {
		require.Equal(t, i, column.Site(i).Neighbors[1], "site %d west bond", i)
	}

	// One row: every north bond wraps back onto the site itself.
	row, err := New(3, 1, 1.0)
	require.NoError(t, err)
	for i := 0; i < row.Len(); i++ {
		require.Equal(t, i, row.Site(i).Neighbors[0], "site %d north bond", i)
	}
}

func TestRandomizeDeterministicUnderSeed(t *testing.T) {
	a, err := New(20, 20, 1.0)
	require.NoError(t, err)
	b, err := New(20, 20, 1.0)
	require.NoError(t, err)

	a.Randomize(core.NewRNG(7))
	b.Randomize(core.NewRNG(7))
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, a.Spin(i), b.Spin(i), "site %d", i)
	}

	ups, downs := 0, 0
	for i := 0; i < a.Len(); i++ {
		if a.Spin(i) == SpinUp {
			ups++
		} else {
			downs++
		}
	}
	require.NotZero(t, ups, "randomize never produced an up spin")
	require.NotZero(t, downs, "randomize never produced a down spin")
}

func TestRenderShape(t *testing.T) {
	l, err := New(2, 2, 1.0)
	require.NoError(t, err)
	require.Equal(t, "-----\n|+|+|\n-----\n|+|+|\n-----\n\n", l.Render())

	l.SetSpin(0, SpinDown)
	require.Equal(t, "-----\n| |+|\n-----\n|+|+|\n-----\n\n", l.Render())
}

func TestRenderDoesNotMutate(t *testing.T) {
	l, err := New(5, 4, 1.0)
	require.NoError(t, err)
	l.Randomize(core.NewRNG(3))

	model := Hamiltonian{J: 1}
	before := model.TotalEnergy(l)
	_ = l.Render()
	require.Equal(t, before, model.TotalEnergy(l))
}
