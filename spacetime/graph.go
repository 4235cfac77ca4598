package spacetime

import "github.com/katalvlaran/skewlife/geom"

// cellSet is the live-cell set at a single generation.
type cellSet map[geom.Vec2]struct{}

func newCellSet(cells []geom.Vec2) cellSet {
	s := make(cellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func sameCellSet(a, b cellSet) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}

// stepEdge is one edge of the per-generation step-link graph: the weight is
// purely spatial since the time component is fixed by which of the two
// nodes' T fields it connects (t or t+1).
type stepEdge struct {
	To geom.Vec3
	W  geom.Vec2
}

// computeStepLinks builds the step-link graph for gen0 (cells alive at
// t=0, connected to cells alive at t=1 and rigidity-linked among
// themselves), per §4.G's edge-generation rule, and returns the resulting
// t=1 generation alongside it.
func computeStepLinks(g2 geom.Generator2, gen0 cellSet) (map[geom.Vec3]map[stepEdge]struct{}, cellSet) {
	links := map[geom.Vec3]map[stepEdge]struct{}{}
	addLink := func(p1, p2 geom.Vec3, l geom.Vec2) {
		if links[p1] == nil {
			links[p1] = map[stepEdge]struct{}{}
		}
		links[p1][stepEdge{To: p2, W: l}] = struct{}{}

		if links[p2] == nil {
			links[p2] = map[stepEdge]struct{}{}
		}
		links[p2][stepEdge{To: p1, W: geom.Vec2{X: -l.X, Y: -l.Y}}] = struct{}{}
	}

	type neighbor struct {
		pos geom.Vec2
		l   geom.Vec2
	}
	nss := map[geom.Vec2][]neighbor{}
	for c := range gen0 {
		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				raw := geom.Vec2{X: c.X + dx, Y: c.Y + dy}
				cn := g2.Canonicalize(raw)
				nss[cn] = append(nss[cn], neighbor{pos: c, l: geom.Vec2{X: cn.X - raw.X, Y: cn.Y - raw.Y}})
			}
		}
	}

	gen1 := cellSet{}
	for pos, ns := range nss {
		ct := len(ns)
		_, livingCurr := gen0[pos]

		// Alive, or dead-and-overpopulated: the whole neighbourhood is
		// mutually rigid, so every pair of participants links to each other.
		if livingCurr || ct >= 3 {
			for _, n1 := range ns {
				for _, n2 := range ns {
					addLink(
						geom.Vec3{X: n1.pos.X, Y: n1.pos.Y, T: 0},
						geom.Vec3{X: n2.pos.X, Y: n2.pos.Y, T: 0},
						geom.Vec2{X: -n1.l.X + n2.l.X, Y: -n1.l.Y + n2.l.Y},
					)
				}
			}
		}

		var livingNext bool
		if livingCurr {
			livingNext = ct >= 3 && ct <= 4
		} else {
			livingNext = ct == 3
		}
		if livingNext {
			for _, n1 := range ns {
				addLink(geom.Vec3{X: pos.X, Y: pos.Y, T: 1}, geom.Vec3{X: n1.pos.X, Y: n1.pos.Y, T: 0}, n1.l)
			}
			gen1[pos] = struct{}{}
		}
	}
	return links, gen1
}

// fullEdge is an edge of the composed multi-generation graph: the weight
// carries the full absolute (x, y, t) translation needed for the two
// endpoints to coincide after canonicalisation.
type fullEdge struct {
	To geom.Vec3
	W  geom.Vec3
}

type fullGraph map[geom.Vec3]map[fullEdge]struct{}

func (g fullGraph) add(p geom.Vec3, e fullEdge) {
	if g[p] == nil {
		g[p] = map[fullEdge]struct{}{}
	}
	g[p][e] = struct{}{}
}

// findConnected BFS-explores the graph from start, returning for every
// reachable node some absolute-coordinate path weight to it.
func findConnected(g fullGraph, start geom.Vec3) map[geom.Vec3]geom.Vec3 {
	acc := map[geom.Vec3]geom.Vec3{}
	type item struct {
		n geom.Vec3
		w geom.Vec3
	}
	queue := []item{{n: start, w: geom.Vec3{}}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if _, ok := acc[cur.n]; ok {
			continue
		}
		acc[cur.n] = cur.w
		for e := range g[cur.n] {
			queue = append(queue, item{n: e.To, w: cur.w.Add(e.W)})
		}
	}
	return acc
}

// findCycleGenerators returns, for every edge whose endpoints are both
// reachable from start, the cycle weight implied by that edge against the
// BFS path weights — the generating set whose Hermite normal form is the
// orbit's translation lattice.
func findCycleGenerators(g fullGraph, start geom.Vec3) []geom.Vec3 {
	connected := findConnected(g, start)

	var acc []geom.Vec3
	for n1, edges := range g {
		r1, ok := connected[n1]
		if !ok {
			continue
		}
		for e := range edges {
			r2, ok := connected[e.To]
			if !ok {
				continue
			}
			acc = append(acc, r1.AddMul(1, e.W).AddMul(-1, r2))
		}
	}
	return acc
}
