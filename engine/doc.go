// Package engine advances a skew torus cellular-automaton state by one
// generation under the magic-count rule: a cell is alive next step iff
// 2*neighbours+self is 5, 6, or 7.
//
// Two state representations exist, chosen by Select based on lattice area:
// a bit-packed MaskEngine (one bit per cell, backed by a 64- or 128-bit
// word, with precomputed neighbour masks) for lattices that fit in a single
// word, and a SetEngine (a set of live V2 coordinates) for everything else.
// Both satisfy Engine[S], so search and sampling code written against the
// interface doesn't care which representation a given lattice picked.
package engine
