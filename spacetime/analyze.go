package spacetime

import (
	"sort"

	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/internal/invariant"
	"github.com/katalvlaran/skewlife/torus"
)

// Orbit is a fully reconstructed, canonicalised discovery: the 3-D
// translation lattice it lives on and the live cells of one
// minimum-population time-slice, sorted.
type Orbit struct {
	Lattice geom.Generator3
	Cells   []geom.Vec2
}

// Analyze reconstructs the space-time lattice of every orbit present in one
// period of gen0 on shape, per §4.G. A single period can contain several
// disjoint co-existing orbits (independent still lifes next to an
// oscillator, say); Analyze returns one Orbit per anchor it finds.
func Analyze(shape torus.Shape, period int64, gen0 []geom.Vec2) []Orbit {
	g2 := shape.Geometry()
	g3 := geom.Generator3{HasOuter: true, Outer: geom.Vec3{T: period}, Inner: g2}

	links := fullGraph{}
	gen1 := newCellSet(gen0)
	for t := int64(0); t < period; t++ {
		links1, gen2 := computeStepLinks(g2, gen1)
		for n1, edges := range links1 {
			t1 := t + n1.T
			c1 := g3.Canonicalize(geom.Vec3{X: n1.X, Y: n1.Y, T: t1})
			for e := range edges {
				n2 := e.To
				t2 := t + n2.T
				c2 := g3.Canonicalize(geom.Vec3{X: n2.X, Y: n2.Y, T: t2})

				rx := (c1.X - n1.X) + e.W.X + (n2.X - c2.X)
				ry := (c1.Y - n1.Y) + e.W.Y + (n2.Y - c2.Y)
				rt := (c1.T - t1) + (t2 - c2.T)

				links.add(c1, fullEdge{To: c2, W: geom.Vec3{X: rx, Y: ry, T: rt}})
			}
		}
		gen1 = gen2
	}
	invariant.Assert(sameCellSet(gen1, newCellSet(gen0)),
		"spacetime: gen_%d does not return to gen_0 (caller-supplied period is not a true period)", period)

	checked := map[geom.Vec3]struct{}{}
	var out []Orbit
	for p1 := range links {
		if p1.T != 0 {
			continue
		}
		if _, ok := checked[p1]; ok {
			continue
		}

		gens := findCycleGenerators(links, p1)
		lat := geom.HermiteCanonicalize3(gens)
		connected := findConnected(links, p1)

		for p2 := range connected {
			if p2.T != 0 {
				continue
			}
			checked[p2] = struct{}{}
		}

		cells := make([]geom.Vec3, 0, len(connected))
		for p2, d := range connected {
			cells = append(cells, lat.Canonicalize(p2.Add(d)))
		}

		out = append(out, analyzeOrbit(lat, cells))
	}
	return out
}

// analyzeOrbit strips hidden smaller-lattice periodicity from (lat, cells)
// (§4.G step 4) and then canonicalises the result under the 8-element
// dihedral group (§4.G step 5).
func analyzeOrbit(lat geom.Generator3, cellsIn []geom.Vec3) Orbit {
	set := make(map[geom.Vec3]struct{}, len(cellsIn))
	for _, c := range cellsIn {
		set[c] = struct{}{}
	}

	for {
		var anchor geom.Vec3
		for c := range set {
			anchor = c
			break
		}

		promoted := false
		for c2 := range set {
			if c2 == anchor {
				continue
			}
			d := c2.Sub(anchor)

			invariant := true
			for c := range set {
				if _, in := set[lat.Canonicalize(c.Add(d))]; !in {
					invariant = false
					break
				}
			}
			if !invariant {
				continue
			}

			lat = geom.HermiteCanonicalize3(append(lat.Materialize(), d))
			next := make(map[geom.Vec3]struct{}, len(set))
			for c := range set {
				next[lat.Canonicalize(c)] = struct{}{}
			}
			set = next
			promoted = true
			break
		}
		if !promoted {
			break
		}
	}

	cells := make([]geom.Vec3, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	return dihedralMinimize(lat, cells)
}

// mangle applies one of the 8 dihedral-group elements (generated by flip_x,
// flip_y, swap_xy) to a spatial coordinate.
func mangle(flipX, flipY, swapXY bool) func(geom.Vec2) geom.Vec2 {
	return func(v geom.Vec2) geom.Vec2 {
		x, y := v.X, v.Y
		if flipX {
			x = -x
		}
		if flipY {
			y = -y
		}
		if swapXY {
			x, y = y, x
		}
		return geom.Vec2{X: x, Y: y}
	}
}

// dihedralMinimize tries every (dihedral element, min-population time-slice,
// origin cell) combination and keeps the one minimising
// (|stx|+|sty|, lattice, sorted cells), per §4.G step 5.
func dihedralMinimize(lat geom.Generator3, cells []geom.Vec3) Orbit {
	byT := map[int64][]geom.Vec2{}
	for _, c := range cells {
		byT[c.T] = append(byT[c.T], geom.Vec2{X: c.X, Y: c.Y})
	}

	minPop := -1
	for _, cs := range byT {
		if minPop == -1 || len(cs) < minPop {
			minPop = len(cs)
		}
	}

	var best *candidate

	materialized := lat.Materialize()

	for _, cs := range byT {
		if len(cs) != minPop {
			continue
		}
		for _, origin := range cs {
			for _, flipX := range [2]bool{false, true} {
				for _, flipY := range [2]bool{false, true} {
					for _, swapXY := range [2]bool{false, true} {
						mg := mangle(flipX, flipY, swapXY)

						vecs := make([]geom.Vec3, len(materialized))
						for i, m := range materialized {
							xy := mg(geom.Vec2{X: m.X, Y: m.Y})
							vecs[i] = geom.Vec3{X: xy.X, Y: xy.Y, T: m.T}
						}
						lat1 := geom.HermiteCanonicalize3(vecs)

						cells1 := make([]geom.Vec2, 0, len(cs))
						for _, c := range cs {
							shifted := mg(geom.Vec2{X: c.X - origin.X, Y: c.Y - origin.Y})
							cells1 = append(cells1, lat1.Inner.Canonicalize(shifted))
						}
						sort.Slice(cells1, func(i, j int) bool { return cells1[i].Less(cells1[j]) })

						cand := candidate{
							score: abs64(lat1.Outer.X) + abs64(lat1.Outer.Y),
							lat:   lat1,
							cells: cells1,
						}
						if best == nil || candidateLess(cand, *best) {
							best = &cand
						}
					}
				}
			}
		}
	}

	return Orbit{Lattice: best.lat, Cells: best.cells}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

type candidate struct {
	score int64
	lat   geom.Generator3
	cells []geom.Vec2
}

func candidateLess(a, b candidate) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	if generator3Less(a.lat, b.lat) {
		return true
	}
	if generator3Less(b.lat, a.lat) {
		return false
	}
	return vec2SliceLess(a.cells, b.cells)
}

func generator1Less(a, b geom.Generator1) bool {
	if a.HasOuter != b.HasOuter {
		return !a.HasOuter
	}
	if !a.HasOuter {
		return false
	}
	return a.Outer.X < b.Outer.X
}

func generator2Less(a, b geom.Generator2) bool {
	if a.HasOuter != b.HasOuter {
		return !a.HasOuter
	}
	if a.HasOuter {
		if a.Outer.X != b.Outer.X {
			return a.Outer.X < b.Outer.X
		}
		if a.Outer.Y != b.Outer.Y {
			return a.Outer.Y < b.Outer.Y
		}
	}
	return generator1Less(a.Inner, b.Inner)
}

func generator3Less(a, b geom.Generator3) bool {
	if a.HasOuter != b.HasOuter {
		return !a.HasOuter
	}
	if a.HasOuter {
		if a.Outer.X != b.Outer.X {
			return a.Outer.X < b.Outer.X
		}
		if a.Outer.Y != b.Outer.Y {
			return a.Outer.Y < b.Outer.Y
		}
		if a.Outer.T != b.Outer.T {
			return a.Outer.T < b.Outer.T
		}
	}
	return generator2Less(a.Inner, b.Inner)
}

func vec2SliceLess(a, b []geom.Vec2) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}
