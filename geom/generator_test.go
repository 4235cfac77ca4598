package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator2Canonicalize_Invariant(t *testing.T) {
	g := Generator2{HasOuter: true, Outer: Vec2{X: 1, Y: 5}, Inner: Generator1{HasOuter: true, Outer: Vec1{X: 5}}}

	for x := int64(-12); x <= 12; x++ {
		for y := int64(-12); y <= 12; y++ {
			v := Vec2{X: x, Y: y}
			c := g.Canonicalize(v)
			require.True(t, c.X >= 0 && c.X < 5, "x out of range for %v -> %v", v, c)
			require.True(t, c.Y >= 0 && c.Y < 5, "y out of range for %v -> %v", v, c)

			// Idempotence: canonicalizing twice is a no-op.
			assert.Equal(t, c, g.Canonicalize(c))
		}
	}
}

func TestGenerator2Canonicalize_NoOuter(t *testing.T) {
	g := Generator2{Inner: Generator1{HasOuter: true, Outer: Vec1{X: 4}}}
	got := g.Canonicalize(Vec2{X: 9, Y: -3})
	assert.Equal(t, Vec2{X: 1, Y: -3}, got, "y passes through unchanged when outer is absent")
}

func TestGenerator3Canonicalize_Idempotent(t *testing.T) {
	g := Generator3{
		HasOuter: true,
		Outer:    Vec3{X: 1, Y: 0, T: 2},
		Inner:    Generator2{HasOuter: true, Outer: Vec2{X: 0, Y: 3}, Inner: Generator1{HasOuter: true, Outer: Vec1{X: 3}}},
	}
	for t3 := int64(-7); t3 <= 7; t3++ {
		for x := int64(-5); x <= 5; x++ {
			v := Vec3{X: x, Y: 1, T: t3}
			c := g.Canonicalize(v)
			assert.Equal(t, c, g.Canonicalize(c))
		}
	}
}
