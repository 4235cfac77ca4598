package engine

import (
	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/torus"
)

// Selected wraps whichever concrete engine fits shape, falling through
// 64-bit mask -> 128-bit mask -> set per spec §4.C/§7. Callers that don't
// need native-word performance (the random sampler) work through
// TickCells/RandCells instead of picking a representation themselves.
type Selected struct {
	Mask64  *MaskEngine[U64]
	Mask128 *MaskEngine[U128]
	Set     *SetEngine
}

// Select compiles the fastest engine that fits shape.
func Select(shape torus.Shape) Selected {
	if e, ok := CompileMask[U64](shape); ok {
		return Selected{Mask64: e}
	}
	if e, ok := CompileMask[U128](shape); ok {
		return Selected{Mask128: e}
	}
	return Selected{Set: NewSetEngine(shape)}
}

// TickCells advances cells one generation regardless of which engine shape
// compiled to.
func (s Selected) TickCells(cells []geom.Vec2) []geom.Vec2 {
	switch {
	case s.Mask64 != nil:
		return s.Mask64.Decode(s.Mask64.Tick(Encode[U64](s.shapeOf(), cells)))
	case s.Mask128 != nil:
		return s.Mask128.Decode(s.Mask128.Tick(Encode[U128](s.shapeOf(), cells)))
	default:
		set := make(CellSet, len(cells))
		for _, c := range cells {
			set[c] = struct{}{}
		}
		return s.Set.Decode(s.Set.Tick(set))
	}
}

// RandCells draws a uniformly random initial state from whichever engine
// compiled.
func (s Selected) RandCells() []geom.Vec2 {
	switch {
	case s.Mask64 != nil:
		return s.Mask64.Decode(s.Mask64.Rand())
	case s.Mask128 != nil:
		return s.Mask128.Decode(s.Mask128.Rand())
	default:
		return s.Set.Decode(s.Set.Rand())
	}
}

func (s Selected) shapeOf() torus.Shape {
	switch {
	case s.Mask64 != nil:
		return s.Mask64.shape
	case s.Mask128 != nil:
		return s.Mask128.shape
	default:
		return s.Set.shape
	}
}
