// Package sampler implements the random-sampling alternative to the
// exhaustive search: instead of walking every state of one lattice, each
// worker repeatedly picks a random lattice (weighted by area bucket, then
// uniformly within it), draws a random initial state, and ticks it forward
// until some state repeats — exactly the period needed to hand the
// trajectory to spacetime.Analyze. Unlike the exhaustive search, sampled
// trajectories are not passed through the symmetry filter: a random walk
// has no "smallest bucket" to deduplicate against, so every analysed orbit
// is reported as found.
package sampler
