// Package invariant holds the one-line programmer-error guard used across
// this module wherever a violated condition indicates a bug in the caller
// or in the package itself, not a recoverable runtime error.
package invariant

import "fmt"

// Assert panics with msg (formatted with args, printf-style) if cond is
// false. Reserved for internal-consistency checks — malformed external
// input is always reported through an error return instead.
func Assert(cond bool, msg string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(msg, args...))
	}
}
