package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHermiteCanonicalize1(t *testing.T) {
	g := HermiteCanonicalize1([]Vec1{{X: 6}, {X: 9}})
	assert.True(t, g.HasOuter)
	assert.Equal(t, int64(3), g.Outer.X)
}

func TestHermiteCanonicalize1_ZeroSpan(t *testing.T) {
	g := HermiteCanonicalize1([]Vec1{{X: 0}, {X: 0}})
	assert.False(t, g.HasOuter)
}

// TestHermiteCanonicalize2_SkewTorus reconstructs a known skew torus's
// generators — (mx, 0) and (syx, my) — and checks the HNF recovers them.
func TestHermiteCanonicalize2_SkewTorus(t *testing.T) {
	mx, my, syx := int64(5), int64(4), int64(2)
	g := HermiteCanonicalize2([]Vec2{{X: mx, Y: 0}, {X: syx, Y: my}})
	assert.True(t, g.HasOuter)
	assert.Equal(t, my, g.Outer.Y)
	assert.Equal(t, syx, g.Outer.X)
	assert.True(t, g.Inner.HasOuter)
	assert.Equal(t, mx, g.Inner.Outer.X)
}

// TestHermiteCanonicalize2_Equivalence checks property 2 of spec §8: two
// generator multisets spanning the same sublattice canonicalize identically.
func TestHermiteCanonicalize2_Equivalence(t *testing.T) {
	a := HermiteCanonicalize2([]Vec2{{X: 5, Y: 0}, {X: 2, Y: 4}})
	// (7,4) = (2,4) + (5,0); adding it as an extra (redundant) generator
	// must not change the canonical form.
	b := HermiteCanonicalize2([]Vec2{{X: 5, Y: 0}, {X: 2, Y: 4}, {X: 7, Y: 4}})
	assert.Equal(t, a, b)
}

func TestHermiteCanonicalize2_Idempotent(t *testing.T) {
	g := HermiteCanonicalize2([]Vec2{{X: 5, Y: 0}, {X: 2, Y: 4}})
	vecs := g.Materialize()
	g2 := HermiteCanonicalize2(vecs)
	assert.Equal(t, g, g2)
}

func TestHermiteCanonicalize3_Idempotent(t *testing.T) {
	vecs := []Vec3{{X: 0, Y: 0, T: 2}, {X: 1, Y: 0, T: 1}, {X: 0, Y: 3, T: 0}}
	g := HermiteCanonicalize3(vecs)
	g2 := HermiteCanonicalize3(g.Materialize())
	assert.Equal(t, g, g2)
}
