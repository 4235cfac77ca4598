// Package visited implements the shared de-duplicator the exhaustive search
// uses to recognize a state whose trajectory some other worker has already
// recorded: a dense bit array of length 2^n backed by 64-bit atomics, safe
// under any interleaving of concurrent Get/Set calls. Setting an
// already-set bit is a no-op; since the only transition is 0->1, no update
// is ever lost regardless of how CAS retries interleave across workers.
package visited
