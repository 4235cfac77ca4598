package runtimecfg

import "runtime"

// Threads resolves the worker count: override, if positive, otherwise
// runtime.NumCPU(), floored at 1 either way.
func Threads(override int) int {
	if override > 0 {
		return override
	}
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
