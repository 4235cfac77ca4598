// Package search performs the parallel exhaustive orbit search: every state
// of a lattice's 2^n configuration space is followed forward under Tick
// until it revisits a state already seen (by itself or another worker),
// recording the minimal-valued representative of whatever cycle it finds.
// The state space is partitioned into workunits and drained by a fixed
// worker pool, coordinating through a single shared visited.BitSet so no
// state's trajectory is walked twice.
package search
