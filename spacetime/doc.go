// Package spacetime reconstructs, from a single period of a discovered
// orbit, the full 3-D (space x time) translation lattice the pattern
// actually lives on: it builds a weighted graph of cell-adjacency
// constraints across one period, takes the cycle-weight group of that graph
// (its Hermite normal form), strips any hidden smaller-lattice periodicity,
// and canonicalises the result under the 8-element dihedral symmetry group.
// This is what turns "a state and a period" into a classifiable Orbit.
package spacetime
