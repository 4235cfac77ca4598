package torus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// shapeTriples extracts the (mx, my, syx) triples from Enumerate's output in
// the order produced, for easy comparison against a literal table.
func shapeTriples(shapes []Shape) [][3]int64 {
	out := make([][3]int64, len(shapes))
	for i, s := range shapes {
		out[i] = [3]int64{s.MX, s.MY, s.SYX}
	}
	return out
}

// TestEnumerate_Area6 pins genl's output for n=6 to the literal sequence
// produced by the symmetry rule of §4.B (transpose via the extended
// Euclidean identity, ties broken by (-mx, my, syx)), traced by hand against
// ars_aa's egcd. Every pair of transpose-equivalent shapes here (e.g.
// (2,3,0)/(3,2,0), (3,2,1)/(6,1,2), (2,3,1)/(6,1,3)) collapses to exactly one
// survivor, and (1,6,0) loses to (6,1,0) the same way.
func TestEnumerate_Area6(t *testing.T) {
	got := shapeTriples(Enumerate(6))
	want := [][3]int64{
		{3, 2, 0},
		{6, 1, 0},
		{6, 1, 1},
		{6, 1, 2},
		{6, 1, 3},
	}
	assert.Equal(t, want, got)
}

func TestEnumerate_Area1(t *testing.T) {
	got := shapeTriples(Enumerate(1))
	assert.Equal(t, [][3]int64{{1, 1, 0}}, got)
}

func TestEnumerate_Area4(t *testing.T) {
	got := shapeTriples(Enumerate(4))
	want := [][3]int64{
		{2, 2, 0},
		{4, 1, 0},
		{4, 1, 1},
		{4, 1, 2},
	}
	assert.Equal(t, want, got)
}

// TestEnumerate_NoDuplicateLattices checks that Enumerate never emits two
// shapes whose Generator2 geometries coincide after canonicalization — the
// whole point of the transpose/reflection reduction.
func TestEnumerate_NoDuplicateLattices(t *testing.T) {
	for _, n := range []int64{1, 2, 3, 4, 6, 8, 9, 12} {
		shapes := Enumerate(n)
		seen := make(map[[3]int64]bool)
		for _, s := range shapes {
			key := [3]int64{s.MX, s.MY, s.SYX}
			assert.False(t, seen[key], "duplicate shape %v for n=%d", key, n)
			seen[key] = true
			assert.Equal(t, n, s.Area(), "area mismatch for %v", key)
		}
	}
}
