// Package classify turns a reconstructed Orbit's lattice into a taxonomic
// label (still life, oscillator, spaceship, wick, wave, agar), formats
// speeds, tiles cells across the pattern's own symmetry shifts, and renders
// the result as a dotted ASCII grid — the printr subcommand's rendering
// core. The gens and rand subcommands print raw records without it.
package classify
