package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// timeFormat matches the stderr diagnostics' timestamp convention (§6).
const timeFormat = "20060102 15:04:05"

// New builds a zerolog.Logger writing to stderr through a console writer,
// at debug level if verbose is set and info level otherwise.
func New(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// Time logs label's start, runs fn, then logs label's elapsed duration — the
// Go equivalent of the original driver's debug_time wrapping a long-running
// block (lattice enumeration, a full exhaustive search run, an analyser
// pass).
func Time[T any](log zerolog.Logger, label string, fn func() T) T {
	log.Info().Msgf("starting %s...", label)
	t0 := time.Now()
	ret := fn()
	log.Info().Dur("elapsed", time.Since(t0)).Msgf("finished %s", label)
	return ret
}

// Heartbeat runs fn every interval until stop is closed, logging nothing
// itself — fn is expected to call log.Info() with whatever progress figures
// the caller (search, sampler) tracks. Intended to run in its own goroutine.
func Heartbeat(interval time.Duration, stop <-chan struct{}, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fn()
		}
	}
}
