// Package geom defines the integer vector types and nested translation-lattice
// geometries used throughout skewlife, and implements their canonicalization.
//
// Three vector shapes are used across the module:
//
//	Vec1 — (x)       one spatial axis
//	Vec2 — (x, y)    the torus plane
//	Vec3 — (x, y, t) space plus the time axis of an orbit
//
// A lattice is modeled as a chain of optional outer generators, innermost
// first: Generator1 wraps (at most) one Vec1 generator, Generator2 wraps a
// Vec2 generator around a Generator1, and Generator3 wraps a Vec3 generator
// around a Generator2. Canonicalizing a vector walks the chain outermost
// generator first, reducing the leading coordinate modulo that generator and
// recursing inward — see Generator2.Canonicalize and Generator3.Canonicalize.
//
// HermiteCanonicalize2/HermiteCanonicalize3 go the other direction: given an
// arbitrary multiset of generator vectors, they compute the Hermite normal
// form chain that spans the same sublattice, so that two generator sets
// describing the same lattice always canonicalize to equal Generator values
// (and therefore compare equal with reflect.DeepEqual or ==).
package geom
