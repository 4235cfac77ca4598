package classify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/record"
)

func TestClassify_StillLife(t *testing.T) {
	lat := geom.Generator3{HasOuter: true, Outer: geom.Vec3{X: 0, Y: 0, T: 1}}
	c := Classify(lat)
	assert.Equal(t, "still life", c.Label)
	assert.False(t, c.ShowCells)
}

func TestClassify_Oscillator(t *testing.T) {
	lat := geom.Generator3{HasOuter: true, Outer: geom.Vec3{X: 0, Y: 0, T: 3}}
	c := Classify(lat)
	assert.Equal(t, "p3 oscillator", c.Label)
}

func TestClassify_Spaceship(t *testing.T) {
	lat := geom.Generator3{HasOuter: true, Outer: geom.Vec3{X: 4, Y: 0, T: 4}}
	c := Classify(lat)
	assert.Equal(t, "4c/4 spaceship", c.Label)
	assert.True(t, c.ShowCells)
}

func TestClassify_StillLifeAgar(t *testing.T) {
	lat := geom.Generator3{
		HasOuter: true,
		Outer:    geom.Vec3{X: 0, Y: 0, T: 1},
		Inner: geom.Generator2{
			HasOuter: true,
			Outer:    geom.Vec2{X: 0, Y: 3},
			Inner:    geom.Generator1{HasOuter: true, Outer: geom.Vec1{X: 3}},
		},
	}
	c := Classify(lat)
	assert.Equal(t, "still-life agar", c.Label)
	assert.False(t, c.ShowCells)
	assert.Len(t, c.Shifts, 11*11)
}

func TestClassify_StillLifeWick(t *testing.T) {
	lat := geom.Generator3{
		HasOuter: true,
		Outer:    geom.Vec3{X: 0, Y: 0, T: 1},
		Inner:    geom.Generator2{HasOuter: false, Inner: geom.Generator1{HasOuter: true, Outer: geom.Vec1{X: 5}}},
	}
	c := Classify(lat)
	assert.Equal(t, "still-life wick", c.Label)
	assert.Len(t, c.Shifts, 11)
}

func TestPrettySpeed(t *testing.T) {
	assert.Equal(t, "c", PrettySpeed(1, 0, 1))
	assert.Equal(t, "c/3", PrettySpeed(0, 1, 3))
	assert.Equal(t, "2c", PrettySpeed(2, 0, 1))
	assert.Equal(t, "(2, 1)c", PrettySpeed(1, 2, 1))
	assert.Equal(t, "(2, 1)c/5", PrettySpeed(-1, 2, 5))
}

func TestDeduper_SuppressesRepeat(t *testing.T) {
	r := record.Result{
		Lattice: geom.Generator3{HasOuter: true, Outer: geom.Vec3{X: 0, Y: 0, T: 1}},
		Cells:   []geom.Vec2{{X: 0, Y: 0}},
	}
	d := NewDeduper()
	assert.False(t, d.SeenBefore(r))
	assert.True(t, d.SeenBefore(r))
}

func TestPrint_StillLifeNoCells(t *testing.T) {
	r := record.Result{
		Lattice: geom.Generator3{HasOuter: true, Outer: geom.Vec3{X: 0, Y: 0, T: 1}},
		Cells:   []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, r))
	assert.Contains(t, buf.String(), "still life")
	assert.NotContains(t, buf.String(), "*")
}
