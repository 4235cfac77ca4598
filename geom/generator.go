package geom

// Generator1 models G1 = Option<Vec1>: the period along the x axis, if any.
// HasOuter is false iff the lattice does not constrain x at all.
type Generator1 struct {
	HasOuter bool
	Outer    Vec1
}

// Generator2 models G2 = (Option<Vec2>, G1): an outer (syx, my) generator
// wrapped around an inner x-period.
type Generator2 struct {
	HasOuter bool
	Outer    Vec2
	Inner    Generator1
}

// Generator3 models G3 = (Option<Vec3>, G2): an outer (stx, sty, mt) generator
// wrapped around an inner 2-D skew-torus geometry. G3 is the geometry of a
// discovered orbit's full space-time translation lattice.
type Generator3 struct {
	HasOuter bool
	Outer    Vec3
	Inner    Generator2
}

// Canonicalize reduces v's x coordinate modulo the generator's period,
// landing it in [0, mx). With no outer generator x passes through unchanged.
func (g Generator1) Canonicalize(v Vec1) Vec1 {
	if !g.HasOuter {
		return v
	}
	_, r := floorDivMod(v.X, g.Outer.X)
	return Vec1{X: r}
}

// Materialize returns the generator chain as ordinary vectors: at most one
// Vec1, the period mx.
func (g Generator1) Materialize() []Vec1 {
	if !g.HasOuter {
		return nil
	}
	return []Vec1{g.Outer}
}

// Canonicalize maps (x, y) into the fundamental domain 0<=y<my, 0<=x<mx (or
// passes a coordinate through unchanged if its generator is absent), per the
// two-step reduction of spec §4.A: first reduce y modulo my, carrying the
// matching multiple of syx into x, then reduce x via the inner geometry.
func (g Generator2) Canonicalize(v Vec2) Vec2 {
	if !g.HasOuter {
		x := g.Inner.Canonicalize(Vec1{X: v.X})
		return Vec2{X: x.X, Y: v.Y}
	}
	k, yr := floorDivMod(v.Y, g.Outer.Y)
	xr := v.X - k*g.Outer.X
	x := g.Inner.Canonicalize(Vec1{X: xr})
	return Vec2{X: x.X, Y: yr}
}

// Materialize returns the generator chain as Vec2s: the outer (syx, my) (if
// present) followed by the inner x-period embedded as (mx, 0).
func (g Generator2) Materialize() []Vec2 {
	var out []Vec2
	if g.HasOuter {
		out = append(out, g.Outer)
	}
	for _, v1 := range g.Inner.Materialize() {
		out = append(out, Vec2{X: v1.X, Y: 0})
	}
	return out
}

// Canonicalize maps (x, y, t) into the fundamental domain of the 3-D
// space-time lattice: reduce t modulo mt, carry the matching multiple of
// (stx, sty) into (x, y), then reduce (x, y) via the inner 2-D geometry.
func (g Generator3) Canonicalize(v Vec3) Vec3 {
	if !g.HasOuter {
		xy := g.Inner.Canonicalize(Vec2{X: v.X, Y: v.Y})
		return Vec3{X: xy.X, Y: xy.Y, T: v.T}
	}
	k, tr := floorDivMod(v.T, g.Outer.T)
	xr := v.X - k*g.Outer.X
	yr := v.Y - k*g.Outer.Y
	xy := g.Inner.Canonicalize(Vec2{X: xr, Y: yr})
	return Vec3{X: xy.X, Y: xy.Y, T: tr}
}

// Materialize returns the generator chain as Vec3s: the outer (stx, sty, mt)
// (if present) followed by the inner 2-D generators embedded with T=0.
func (g Generator3) Materialize() []Vec3 {
	var out []Vec3
	if g.HasOuter {
		out = append(out, g.Outer)
	}
	for _, v2 := range g.Inner.Materialize() {
		out = append(out, Vec3{X: v2.X, Y: v2.Y, T: 0})
	}
	return out
}
