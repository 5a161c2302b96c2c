package ising

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 20, c.Width)
	assert.Equal(t, 20, c.Height)
	assert.Equal(t, 1.0, c.Beta)
	assert.Equal(t, 1.0, c.Coupling)
	assert.Equal(t, 0.0, c.Field)
	assert.Equal(t, "inverted", c.Acceptance)
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":          "8",
		"h":          "6",
		"beta":       "0.7",
		"j":          "2",
		"field":      "-0.25",
		"seed":       "12",
		"acceptance": "metropolis",
	})
	assert.Equal(t, 8, c.Width)
	assert.Equal(t, 6, c.Height)
	assert.Equal(t, 0.7, c.Beta)
	assert.Equal(t, 2.0, c.Coupling)
	assert.Equal(t, -0.25, c.Field)
	assert.Equal(t, int64(12), c.Seed)
	assert.Equal(t, "metropolis", c.Acceptance)
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":    "0",
		"h":    "x",
		"beta": "hot",
		"seed": "9.5",
	})
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 8\nheight: 4\nbeta: 0.25\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Width)
	assert.Equal(t, 4, c.Height)
	assert.Equal(t, 0.25, c.Beta)
	// Unnamed keys keep their defaults.
	assert.Equal(t, 1.0, c.Coupling)
	assert.Equal(t, "inverted", c.Acceptance)
}

func TestLoadFileRejectsBadDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 0\n"), 0o644))

	_, err := LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestParseAcceptance(t *testing.T) {
	assert.Equal(t, AcceptMetropolis, ParseAcceptance("metropolis"))
	assert.Equal(t, AcceptInverted, ParseAcceptance("inverted"))
	assert.Equal(t, AcceptInverted, ParseAcceptance(""))
	assert.Equal(t, AcceptInverted, ParseAcceptance("bogus"))
}
