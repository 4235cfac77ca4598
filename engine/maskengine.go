package engine

import (
	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/torus"
)

// Engine is the common tick/rand/decode surface both state representations
// satisfy, per spec §4.C.
type Engine[S any] interface {
	Tick(s S) S
	Rand() S
	Decode(s S) []geom.Vec2
}

// MaskEngine is the bit-packed tick engine: one bit per cell, with a
// precomputed Mask per cell giving its live-neighbour count in one
// AND+popcount per mask word.
type MaskEngine[T Word[T]] struct {
	shape torus.Shape
	masks []Mask[T]
}

// CompileMask builds the neighbour masks for shape, or reports false if the
// lattice doesn't fit in T's bit width — the caller falls through to a
// wider word or to SetEngine, per spec §4.C/§7 ("never an error").
func CompileMask[T Word[T]](shape torus.Shape) (*MaskEngine[T], bool) {
	var zero T
	n := shape.Area()
	if n > int64(zero.Capacity()) {
		return nil, false
	}

	g2 := shape.Geometry()
	raw := make([][]T, n)
	for idx := int64(0); idx < n; idx++ {
		x := idx % shape.MX
		y := idx / shape.MX
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nb := g2.Canonicalize(geom.Vec2{X: x + dx, Y: y + dy})
				nbIdx := int(nb.Y*shape.MX + nb.X)
				raw[idx] = addBit(raw[idx], nbIdx)
			}
		}
	}

	return &MaskEngine[T]{shape: shape, masks: shapeMasks(raw)}, true
}

// Tick applies the magic-count rule: a cell is alive next step iff
// 2*neighbours+self is in {5,6,7}.
func (e *MaskEngine[T]) Tick(s T) T {
	var s1 T
	for idx, m := range e.masks {
		ct := m.Count(s)
		self := 0
		if s.Bit(idx) {
			self = 1
		}
		magic := 2*ct + self
		if magic >= 5 && magic <= 7 {
			s1 = s1.WithBit(idx)
		}
	}
	return s1
}

// Rand draws a uniform random state over exactly the lattice's cells.
func (e *MaskEngine[T]) Rand() T {
	var zero T
	return zero.Rand(int(e.shape.Area()))
}

// Shape returns the lattice this engine was compiled for.
func (e *MaskEngine[T]) Shape() torus.Shape { return e.shape }

// Decode returns the live cells of s as lattice coordinates.
func (e *MaskEngine[T]) Decode(s T) []geom.Vec2 {
	var out []geom.Vec2
	for idx := range e.masks {
		if s.Bit(idx) {
			out = append(out, geom.Vec2{X: int64(idx) % e.shape.MX, Y: int64(idx) / e.shape.MX})
		}
	}
	return out
}

// Encode packs cells into a state of type T; the inverse of Decode, used to
// seed a mask engine from a set produced elsewhere (e.g. the analyser).
func Encode[T Word[T]](shape torus.Shape, cells []geom.Vec2) T {
	var s T
	for _, c := range cells {
		idx := int(c.Y*shape.MX + c.X)
		s = s.WithBit(idx)
	}
	return s
}
