// Package record defines the wire format every subcommand speaks: one
// [lattice, cells] JSON tuple per line, where lattice is the nested
// [outer_or_null, inner] encoding of a geom.Generator3 and cells is a sorted
// array of [x, y] pairs. gens/rand produce these records; printr
// consumes them back — the format is symmetric by construction.
package record
