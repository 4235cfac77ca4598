package symmetry

import (
	"github.com/katalvlaran/skewlife/engine"
	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/torus"
)

// delta is a nonzero spatial translation (dx, dy) tried against a state.
type delta struct{ dx, dy int64 }

// translations lists every (dx, dy) in [0,mx) x [0,my) except (0,0).
func translations(shape torus.Shape) []delta {
	out := make([]delta, 0, shape.MX*shape.MY-1)
	for dy := int64(0); dy < shape.MY; dy++ {
		for dx := int64(0); dx < shape.MX; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, delta{dx, dy})
		}
	}
	return out
}

// shift decodes s, translates every live cell by (dx, dy) on the torus, and
// re-encodes the result.
func shift[T engine.Word[T]](eng *engine.MaskEngine[T], s T, d delta) T {
	cells := eng.Decode(s)
	g2 := eng.Shape().Geometry()
	shifted := make([]geom.Vec2, len(cells))
	for i, c := range cells {
		shifted[i] = g2.Canonicalize(geom.Vec2{X: c.X + d.dx, Y: c.Y + d.dy})
	}
	return engine.Encode[T](eng.Shape(), shifted)
}

// Accept applies the rules of the translation filter to the trajectory
// starting at s with the given period: iterate t = 0..period-1, and at each
// step try every nonzero spatial translation of tick^t(s).
//
//   - if the translated state is numerically smaller than s: reject (a
//     smaller-valued representative of the same orbit exists, and will be
//     discovered from its own starting bucket instead).
//   - if the translated state equals s at t=0: reject (the pattern has a
//     strictly smaller spatial period and lives on a smaller torus).
//   - if the translated state equals s at t>0: accept.
//   - otherwise keep advancing t.
//
// Reaching t=period with no match means no translation ever reproduces s;
// the orbit genuinely requires this lattice.
func Accept[T engine.Word[T]](eng *engine.MaskEngine[T], s T, period int) bool {
	shifts := translations(eng.Shape())

	st := s
	for t := 0; t < period; t++ {
		for _, d := range shifts {
			s1 := shift(eng, st, d)
			if s1.Less(s) {
				return false
			}
			if s1 == s {
				return t > 0
			}
		}
		st = eng.Tick(st)
	}
	return true
}
