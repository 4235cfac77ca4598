package geom

import "fmt"

// Vec1 is a one-dimensional integer coordinate.
type Vec1 struct {
	X int64
}

// Vec2 is a two-dimensional integer coordinate (the torus plane).
type Vec2 struct {
	X, Y int64
}

// Vec3 is a three-dimensional integer coordinate: space plus time.
type Vec3 struct {
	X, Y, T int64
}

func (v Vec1) String() string { return fmt.Sprintf("(%d)", v.X) }
func (v Vec2) String() string { return fmt.Sprintf("(%d, %d)", v.X, v.Y) }
func (v Vec3) String() string { return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.T) }

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.T + o.T} }

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.T - o.T} }

// Less gives Vec2 the lexicographic order (x, then y) used to sort cell lists
// and to pick numerically-minimal representatives.
func (v Vec2) Less(o Vec2) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

// Less gives Vec3 the lexicographic order (x, then y, then t).
func (v Vec3) Less(o Vec3) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.T < o.T
}

// Drop2 discards the time coordinate, yielding the spatial projection.
func (v Vec3) Drop2() Vec2 { return Vec2{v.X, v.Y} }

// floorDivMod returns (q, r) such that a = q*b + r, 0 <= r < b, for b > 0.
// Go's native / and % truncate toward zero; canonicalization needs the
// floor/Euclidean variant so negative coordinates land in [0, b).
func floorDivMod(a, b int64) (q, r int64) {
	q = a / b
	r = a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
