package torus

import (
	"fmt"

	"github.com/katalvlaran/skewlife/geom"
)

// Shape is a skew torus (mx, my, syx): the quotient of Z^2 by the lattice
// generated by (mx, 0) and (syx, my).
type Shape struct {
	MX, MY, SYX int64
}

// Area returns mx*my, the number of cells on the torus.
func (s Shape) Area() int64 { return s.MX * s.MY }

// String renders the shape in the wire format used by genl/gens: three
// space-separated integers.
func (s Shape) String() string {
	return fmt.Sprintf("%d %d %d", s.MX, s.MY, s.SYX)
}

// Geometry returns the Generator2 describing this torus's translation
// lattice, i.e. (Some(syx, my), (Some(mx), ())) — the geometry every tick
// engine, the symmetry filter, and the space-time analyser canonicalize
// against.
func (s Shape) Geometry() geom.Generator2 {
	return geom.Generator2{
		HasOuter: true,
		Outer:    geom.Vec2{X: s.SYX, Y: s.MY},
		Inner:    geom.Generator1{HasOuter: true, Outer: geom.Vec1{X: s.MX}},
	}
}
