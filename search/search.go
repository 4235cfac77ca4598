package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skewlife/engine"
	"github.com/katalvlaran/skewlife/internal/logging"
	"github.com/katalvlaran/skewlife/internal/runtimecfg"
	"github.com/katalvlaran/skewlife/torus"
	"github.com/katalvlaran/skewlife/visited"
)

// Found is one discovered trajectory's minimal-valued representative state
// and its period.
type Found struct {
	State  engine.U64
	Period int
}

// one runs the trajectory-following algorithm of §4.E for a single starting
// state s0. The first three generations are unrolled, matching the
// original's "heavy [mis]optimization" comment: a low fundamental period
// misdetected as a multiple of itself here is harmless, since the symmetry
// filter downstream accepts any t>0 match and later code only cares about
// the minimal cycle representative, not the exact period value beyond
// "some accepted multiple of the truth".
func one(eng *engine.MaskEngine[engine.U64], flags *visited.BitSet, s0 engine.U64) (Found, bool) {
	if flags.Get(uint64(s0)) {
		return Found{}, false
	}

	s1 := eng.Tick(s0)
	if flags.Get(uint64(s1)) {
		flags.Set(uint64(s0))
		return Found{}, false
	}

	s2 := eng.Tick(s1)
	if flags.Get(uint64(s2)) {
		flags.Set(uint64(s1))
		flags.Set(uint64(s0))
		return Found{}, false
	}

	trajectory := []engine.U64{s0, s1, s2}
	index := map[engine.U64]int{s0: 0, s1: 1, s2: 2}

	var found Found
	ok := false

	s := s2
	for {
		s = eng.Tick(s)

		if flags.Get(uint64(s)) {
			break
		}

		if idx, seen := index[s]; seen {
			cycle := trajectory[idx:]
			min := cycle[0]
			for _, c := range cycle[1:] {
				if c.Less(min) {
					min = c
				}
			}
			found = Found{State: min, Period: len(cycle)}
			ok = true
			break
		}

		index[s] = len(trajectory)
		trajectory = append(trajectory, s)
	}

	for _, t := range trajectory {
		flags.Set(uint64(t))
	}

	return found, ok
}

// Run exhaustively searches shape's entire 2^n configuration space
// (n = mx*my) and returns every discovered (minimal state, period) pair.
// Callers are expected to run symmetry.Accept over each result (§4.F)
// before treating it as a genuine orbit requiring this lattice.
func Run(ctx context.Context, log zerolog.Logger, shape torus.Shape, threads int) ([]Found, error) {
	n := int(shape.Area())
	eng, ok := engine.CompileMask[engine.U64](shape)
	if !ok {
		return nil, fmt.Errorf("search: lattice %s has %d cells, too large for exhaustive search", shape, n)
	}

	workunitBits := n
	if workunitBits > 20 {
		workunitBits = 20
	}
	suffixBits := uint(n - workunitBits)

	flags := visited.New(n)
	workers := runtimecfg.Threads(threads)
	total := int64(1) << uint(workunitBits)

	var mu sync.Mutex
	var next int64
	resultSets := make([]map[Found]struct{}, workers)
	for w := range resultSets {
		resultSets[w] = map[Found]struct{}{}
	}

	stop := make(chan struct{})
	defer close(stop)
	go logging.Heartbeat(60*time.Second, stop, func() {
		mu.Lock()
		remaining := total - next
		mu.Unlock()
		log.Info().Int64("remaining_workunits", remaining).Int64("total_workunits", total).Msg("search heartbeat")
	})

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		results := resultSets[w]
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				mu.Lock()
				if next >= total {
					mu.Unlock()
					return nil
				}
				workunit := next
				next++
				mu.Unlock()

				for suffix := int64(0); suffix < (int64(1) << suffixBits); suffix++ {
					s0 := engine.U64((workunit << suffixBits) | suffix)
					if found, ok := one(eng, flags, s0); ok {
						results[found] = struct{}{}
					}
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := map[Found]struct{}{}
	var out []Found
	for _, results := range resultSets {
		for f := range results {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out, nil
}
