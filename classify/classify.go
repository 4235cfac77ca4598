package classify

import (
	"fmt"

	"github.com/katalvlaran/skewlife/geom"
)

// Classification is the taxonomic label for a discovered orbit's lattice,
// together with the shifts of the inner (spatial) generators its cells
// should be tiled across before rendering, per §4.I.
type Classification struct {
	Label     string
	ShowCells bool
	Shifts    []geom.Vec2
}

// tileRadius matches §4.I's "{-5..5}^rank" tiling window.
const tileRadius = 5

// Classify inspects lat.Inner.Materialize()'s rank (the dimension of the
// t=0 translation lattice: 0, 1, or 2) and lat.Outer (stx, sty, mt) and
// returns the matching label from the classifier table: still life,
// oscillator, or spaceship at rank 0; wick or wave at rank 1; agar at
// rank 2.
func Classify(lat geom.Generator3) Classification {
	inner := lat.Inner.Materialize()
	stx, sty, mt := lat.Outer.X, lat.Outer.Y, lat.Outer.T

	switch len(inner) {
	case 0:
		return classifyRank0(stx, sty, mt)
	case 1:
		return classifyRank1(lat.Inner, inner[0], stx, sty, mt)
	case 2:
		return classifyRank2(lat.Inner, inner, stx, sty, mt)
	default:
		panic(fmt.Sprintf("classify: impossible inner rank %d", len(inner)))
	}
}

func classifyRank0(stx, sty, mt int64) Classification {
	shifts := []geom.Vec2{{}}
	switch {
	case stx == 0 && sty == 0 && mt == 1:
		return Classification{Label: "still life", Shifts: shifts}
	case stx == 0 && sty == 0:
		return Classification{Label: fmt.Sprintf("p%d oscillator", mt), ShowCells: mt > 2, Shifts: shifts}
	default:
		return Classification{Label: fmt.Sprintf("%s spaceship", PrettySpeed(stx, sty, mt)), ShowCells: true, Shifts: shifts}
	}
}

func classifyRank1(inner geom.Generator2, v geom.Vec2, stx, sty, mt int64) Classification {
	shifts := lineShifts(v)
	ttp, hasTtp := stationaryPeriod(inner, stx, sty)

	switch {
	case !hasTtp:
		return Classification{Label: fmt.Sprintf("%s wave", PrettySpeed(stx, sty, mt)), ShowCells: true, Shifts: shifts}
	case stx == 0 && sty == 0 && mt == 1:
		return Classification{Label: "still-life wick", Shifts: shifts}
	case stx == 0 && sty == 0:
		return Classification{Label: fmt.Sprintf("p%d oscillator wick", mt), ShowCells: mt > 2, Shifts: shifts}
	default:
		return Classification{Label: fmt.Sprintf("%s jump, p%d oscillator wick", PrettySpeed(stx, sty, mt), ttp*mt), ShowCells: true, Shifts: shifts}
	}
}

func classifyRank2(inner geom.Generator2, vs []geom.Vec2, stx, sty, mt int64) Classification {
	shifts := planeShifts(vs[0], vs[1])

	switch {
	case stx == 0 && sty == 0 && mt == 1:
		return Classification{Label: "still-life agar", Shifts: shifts}
	case stx == 0 && sty == 0:
		return Classification{Label: fmt.Sprintf("p%d agar", mt), Shifts: shifts}
	default:
		ttp, _ := stationaryPeriod(inner, stx, sty)
		return Classification{Label: fmt.Sprintf("%s jump, p%d agar", PrettySpeed(stx, sty, mt), ttp*mt), Shifts: shifts}
	}
}

// stationaryPeriod finds the minimal k >= 1 such that k*(stx, sty) collapses
// to (0, 0) under inner: the period, independent of the outer generator's
// own mt, at which a single copy of the wick/agar returns to its starting
// phase without needing the outer generator's full spatial jump. inner's
// generators determine a finite-order quotient group for rank 2, so a k
// always exists there; for rank 1, it exists only when (stx, sty) lies along
// inner's own line, and the search below correctly exhausts without a match
// otherwise. The bound is sized off the inputs, comfortably covering any
// quotient-group order a discovered finite lattice can produce.
func stationaryPeriod(inner geom.Generator2, stx, sty int64) (int64, bool) {
	if stx == 0 && sty == 0 {
		return 1, true
	}

	bound := 4 * (abs64(stx) + abs64(sty) + 1)
	vs := inner.Materialize()
	for _, v := range vs {
		bound += 4 * (abs64(v.X) + abs64(v.Y))
	}
	if len(vs) == 2 {
		// The quotient group's order is the determinant of inner's generators.
		bound += abs64(vs[0].X*vs[1].Y - vs[0].Y*vs[1].X)
	}
	if bound < 64 {
		bound = 64
	}

	for k := int64(1); k <= bound; k++ {
		c := inner.Canonicalize(geom.Vec2{X: k * stx, Y: k * sty})
		if c.X == 0 && c.Y == 0 {
			return k, true
		}
	}
	return 0, false
}

// PrettySpeed renders a spaceship/wave/wick speed per §4.I: the larger of
// |x|, |y| first, "c" for the unit diagonal-free case, "Nc" when the motion
// is axis-aligned, "(N, M)c" otherwise, with a "/mt" suffix when mt != 1.
func PrettySpeed(x, y, mt int64) string {
	x, y = abs64(x), abs64(y)
	if y > x {
		x, y = y, x
	}

	var ret string
	switch {
	case x == 1 && y == 0:
		ret = "c"
	case y == 0:
		ret = fmt.Sprintf("%dc", x)
	default:
		ret = fmt.Sprintf("(%d, %d)c", x, y)
	}
	if mt != 1 {
		ret = fmt.Sprintf("%s/%d", ret, mt)
	}
	return ret
}

func lineShifts(v geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, 0, 2*tileRadius+1)
	for n := int64(-tileRadius); n <= tileRadius; n++ {
		out = append(out, geom.Vec2{X: n * v.X, Y: n * v.Y})
	}
	return out
}

func planeShifts(v1, v2 geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, 0, (2*tileRadius+1)*(2*tileRadius+1))
	for n := int64(-tileRadius); n <= tileRadius; n++ {
		for m := int64(-tileRadius); m <= tileRadius; m++ {
			out = append(out, geom.Vec2{X: n*v1.X + m*v2.X, Y: n*v1.Y + m*v2.Y})
		}
	}
	return out
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
