// Package runtimecfg resolves the worker-count configuration shared by the
// exhaustive search and the random sampler: an explicit override if the
// caller set one (the -j/--threads flag), otherwise runtime.NumCPU(),
// floored at 1.
package runtimecfg
