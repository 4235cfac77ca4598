// Package logging wraps zerolog with the console writer and timestamp
// format the rest of the system expects, and provides Time, a direct
// replacement for the original driver's debug_time: log a block's start,
// run it, log its elapsed duration.
package logging
