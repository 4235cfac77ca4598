package geom

// combinable is carried alongside the integer values in the extended-gcd
// recurrence so that the Bezout combination can be tracked not just for
// plain integers but for whole generator vectors — the same trick the
// generator enumerator uses for a single coordinate (see torus.Enumerate).
type combinable[T any] interface {
	Scale(k int64) T
	AddMul(k int64, o T) T
}

// egcd runs the extended-Euclid recurrence on (a, b), carrying (ra, rb)
// through the same sequence of subtract-and-swap steps. It returns the
// nonnegative gcd of a and b together with the two carried values, the
// second of which (rb) is always the one paired with the returned gcd.
func egcd[T combinable[T]](a, b int64, ra, rb T) (int64, T, T) {
	if a < 0 {
		a = -a
		ra = ra.Scale(-1)
	}
	if b < 0 {
		b = -b
		rb = rb.Scale(-1)
	}
	for a > 0 {
		q := b / a
		b -= q * a
		rb = rb.AddMul(-q, ra)
		a, b = b, a
		ra, rb = rb, ra
	}
	return b, ra, rb
}

// Scale returns v scaled by k.
func (v Vec1) Scale(k int64) Vec1 { return Vec1{X: v.X * k} }

// AddMul returns v + k*o.
func (v Vec1) AddMul(k int64, o Vec1) Vec1 { return Vec1{X: v.X + k*o.X} }

// Scale returns v scaled by k.
func (v Vec2) Scale(k int64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// AddMul returns v + k*o.
func (v Vec2) AddMul(k int64, o Vec2) Vec2 { return Vec2{X: v.X + k*o.X, Y: v.Y + k*o.Y} }

// Scale returns v scaled by k.
func (v Vec3) Scale(k int64) Vec3 { return Vec3{X: v.X * k, Y: v.Y * k, T: v.T * k} }

// AddMul returns v + k*o.
func (v Vec3) AddMul(k int64, o Vec3) Vec3 {
	return Vec3{X: v.X + k*o.X, Y: v.Y + k*o.Y, T: v.T + k*o.T}
}

// HermiteCanonicalize1 computes the Hermite normal form of the sublattice of
// Z spanned by vecs: the single generator is the gcd of their x coordinates.
func HermiteCanonicalize1(vecs []Vec1) Generator1 {
	curX := int64(0)
	cur := Vec1{}
	for _, v := range vecs {
		d, _, nv := egcd(curX, v.X, cur, v)
		curX, cur = d, nv
	}
	if curX == 0 {
		return Generator1{}
	}
	return Generator1{HasOuter: true, Outer: Vec1{X: curX}}
}

// HermiteCanonicalize2 computes the Hermite normal form of the sublattice of
// Z^2 spanned by vecs, per spec §3/§4.A: first isolate the y-periodicity as
// the gcd of all y coordinates (via the extended-gcd recurrence, which also
// yields one spanning vector with that y value), then recurse on the
// x-residues to find the inner x-period, then reduce the outer generator's x
// component against that inner period.
func HermiteCanonicalize2(vecs []Vec2) Generator2 {
	curY := int64(0)
	cur := Vec2{}
	for _, v := range vecs {
		d, _, nv := egcd(curY, v.Y, cur, v)
		curY, cur = d, nv
	}

	inner := make([]Vec1, 0, len(vecs))
	if curY == 0 {
		for _, v := range vecs {
			inner = append(inner, Vec1{X: v.X})
		}
		return Generator2{Inner: HermiteCanonicalize1(inner)}
	}

	for _, v := range vecs {
		k := v.Y / curY // exact: curY divides every v.Y
		inner = append(inner, Vec1{X: v.X - k*cur.X})
	}
	innerGen := HermiteCanonicalize1(inner)
	syx := innerGen.Canonicalize(Vec1{X: cur.X})

	return Generator2{
		HasOuter: true,
		Outer:    Vec2{X: syx.X, Y: curY},
		Inner:    innerGen,
	}
}

// HermiteCanonicalize3 computes the Hermite normal form of the sublattice of
// Z^3 spanned by vecs, the 3-D analogue of HermiteCanonicalize2: isolate the
// t-periodicity, recurse on the (x, y) residues for the inner 2-D geometry,
// then reduce the outer (stx, sty) against that inner geometry.
func HermiteCanonicalize3(vecs []Vec3) Generator3 {
	curT := int64(0)
	cur := Vec3{}
	for _, v := range vecs {
		d, _, nv := egcd(curT, v.T, cur, v)
		curT, cur = d, nv
	}

	inner := make([]Vec2, 0, len(vecs))
	if curT == 0 {
		for _, v := range vecs {
			inner = append(inner, Vec2{X: v.X, Y: v.Y})
		}
		return Generator3{Inner: HermiteCanonicalize2(inner)}
	}

	for _, v := range vecs {
		k := v.T / curT // exact: curT divides every v.T
		inner = append(inner, Vec2{X: v.X - k*cur.X, Y: v.Y - k*cur.Y})
	}
	innerGen := HermiteCanonicalize2(inner)
	sxy := innerGen.Canonicalize(Vec2{X: cur.X, Y: cur.Y})

	return Generator3{
		HasOuter: true,
		Outer:    Vec3{X: sxy.X, Y: sxy.Y, T: curT},
		Inner:    innerGen,
	}
}
