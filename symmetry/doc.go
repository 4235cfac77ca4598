// Package symmetry implements the translation-rejection filter applied to
// every trajectory the search turns up: a discovered (state, period) pair
// survives only if no spatial translation of any of its generations, at any
// time offset, produces a numerically smaller representative or collapses
// the pattern onto a strictly smaller spatial period. Surviving orbits are
// exactly the ones that genuinely require the lattice they were found on.
package symmetry
