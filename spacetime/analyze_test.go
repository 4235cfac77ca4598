package spacetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/torus"
)

// TestAnalyze_StillLife checks a block's reconstructed lattice: rank zero
// (no spatial translation), outer (0,0,1) — a still life per the
// classifier's table (§4.I).
func TestAnalyze_StillLife(t *testing.T) {
	shape := torus.Shape{MX: 6, MY: 6, SYX: 0}
	block := []geom.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	orbits := Analyze(shape, 1, block)
	require.Len(t, orbits, 1)

	lat := orbits[0].Lattice
	require.True(t, lat.HasOuter)
	assert.Equal(t, geom.Vec3{X: 0, Y: 0, T: 1}, lat.Outer)
	assert.Empty(t, lat.Inner.Materialize())
	assert.Len(t, orbits[0].Cells, 4)
}

// TestAnalyze_Blinker checks a blinker's reconstructed lattice: outer
// (0,0,2) — a p2 oscillator.
func TestAnalyze_Blinker(t *testing.T) {
	shape := torus.Shape{MX: 7, MY: 7, SYX: 0}
	horiz := []geom.Vec2{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}}

	orbits := Analyze(shape, 2, horiz)
	require.Len(t, orbits, 1)

	lat := orbits[0].Lattice
	require.True(t, lat.HasOuter)
	assert.Equal(t, geom.Vec3{X: 0, Y: 0, T: 2}, lat.Outer)
	assert.Len(t, orbits[0].Cells, 3)
}
