package engine

import (
	"math/rand"

	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/torus"
)

// CellSet is the unbounded state representation: the live cells only, per
// spec §3 ("Set: an unordered set of V2, living cells only").
type CellSet map[geom.Vec2]struct{}

// SetEngine is the tick engine used when a lattice doesn't fit any bit-packed
// word width. It never fails to compile, per spec §4.C/§7.
type SetEngine struct {
	shape torus.Shape
	geom2 geom.Generator2
}

func NewSetEngine(shape torus.Shape) *SetEngine {
	return &SetEngine{shape: shape, geom2: shape.Geometry()}
}

// Tick counts, for every cell touched by some live cell's 3x3 neighbourhood,
// how many live cells border it (including itself), then applies the magic
// rule directly rather than via popcount since there's no bit word to AND.
func (e *SetEngine) Tick(s CellSet) CellSet {
	counts := make(map[geom.Vec2]int, len(s)*4)
	for c := range s {
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				n := e.geom2.Canonicalize(geom.Vec2{X: c.X + dx, Y: c.Y + dy})
				counts[n]++
			}
		}
	}

	s1 := make(CellSet, len(s))
	for c, ct := range counts {
		_, alive := s[c]
		var next bool
		if alive {
			next = ct >= 3 && ct <= 4
		} else {
			next = ct == 3
		}
		if next {
			s1[c] = struct{}{}
		}
	}
	return s1
}

// Rand flips each cell independently with probability 1/2.
func (e *SetEngine) Rand() CellSet {
	s := make(CellSet)
	for x := int64(0); x < e.shape.MX; x++ {
		for y := int64(0); y < e.shape.MY; y++ {
			if rand.Intn(2) == 1 {
				s[geom.Vec2{X: x, Y: y}] = struct{}{}
			}
		}
	}
	return s
}

func (e *SetEngine) Decode(s CellSet) []geom.Vec2 {
	out := make([]geom.Vec2, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}
