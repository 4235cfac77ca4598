// Package skewlife enumerates, exhaustively searches, randomly samples, and
// classifies periodic configurations of the magic-count Life-like rule
// (alive iff 2*neighbours+self is in {5,6,7}) on skew-toroidal finite
// lattices.
//
// The pipeline lives in dedicated subpackages:
//
//	geom/      — the nested translation-generator chain (Generator1/2/3) and
//	             its Hermite-normal-form canonicalizer
//	torus/     — skew-toroidal shapes (mx, my, syx) and their enumeration
//	engine/    — bit-packed and set-based tick engines implementing the rule
//	search/    — parallel exhaustive orbit search over a lattice's full
//	             configuration space
//	symmetry/  — the translation-rejection filter applied to every
//	             discovered orbit
//	spacetime/ — reconstruction of a discovered orbit's full space-time
//	             translation lattice
//	sampler/   — the random-sampling alternative to exhaustive search
//	classify/  — taxonomic labels, speed formatting, and cell rendering
//	record/    — the JSON wire format shared by every subcommand
//	cmd/skewlife/ — the genl/gens/rand/printr command-line driver
package skewlife
