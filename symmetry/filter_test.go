package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewlife/engine"
	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/torus"
)

// TestAccept_RejectsFullRowSymmetry: a state alive on every cell of a single
// row is invariant under every horizontal shift, so it must be rejected even
// at t=0 — it has a strictly smaller spatial period than the lattice.
func TestAccept_RejectsFullRowSymmetry(t *testing.T) {
	shape := torus.Shape{MX: 4, MY: 1, SYX: 0}
	e, ok := engine.CompileMask[engine.U64](shape)
	require.True(t, ok)

	s := engine.Encode[engine.U64](shape, []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	assert.False(t, Accept(e, s, 1))
}

// TestAccept_AcceptsAsymmetricSingleCell: a lone live cell never maps back
// onto itself under a nonzero translation, and every translated copy lands
// at a strictly larger bit index than the original (since idx 0 is minimal),
// so it survives every rule of the filter.
func TestAccept_AcceptsAsymmetricSingleCell(t *testing.T) {
	shape := torus.Shape{MX: 3, MY: 3, SYX: 0}
	e, ok := engine.CompileMask[engine.U64](shape)
	require.True(t, ok)

	s := engine.Encode[engine.U64](shape, []geom.Vec2{{X: 0, Y: 0}})
	assert.True(t, Accept(e, s, 1))
}

// TestAccept_RejectsSmallerValuedEquivalent: a live cell at a high bit index
// has a translated copy at a lower index, which must reject it in favour of
// the lower-indexed representative's own bucket.
func TestAccept_RejectsSmallerValuedEquivalent(t *testing.T) {
	shape := torus.Shape{MX: 3, MY: 3, SYX: 0}
	e, ok := engine.CompileMask[engine.U64](shape)
	require.True(t, ok)

	s := engine.Encode[engine.U64](shape, []geom.Vec2{{X: 2, Y: 2}})
	assert.False(t, Accept(e, s, 1))
}
