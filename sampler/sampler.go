package sampler

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/skewlife/engine"
	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/internal/logging"
	"github.com/katalvlaran/skewlife/internal/runtimecfg"
	"github.com/katalvlaran/skewlife/record"
	"github.com/katalvlaran/skewlife/spacetime"
	"github.com/katalvlaran/skewlife/torus"
)

// Config bounds a sampling run: which band of lattice areas to draw shapes
// from, and how many concurrent workers walk random trajectories.
type Config struct {
	MinArea, MaxArea int64
	Threads          int
}

// latticeEngine pairs a shape with its already-compiled tick engine, built
// once per lattice rather than once per draw.
type latticeEngine struct {
	shape torus.Shape
	eng   engine.Selected
}

// buildBuckets groups every inequivalent shape in [minArea, maxArea] by
// area, reusing torus.Enumerate's own canonical deduplication rather than
// regenerating (and re-deduplicating) a raw (mx, my, syx) triple list.
func buildBuckets(minArea, maxArea int64) map[int64][]latticeEngine {
	buckets := make(map[int64][]latticeEngine)
	for area := minArea; area <= maxArea; area++ {
		shapes := torus.Enumerate(area)
		if len(shapes) == 0 {
			continue
		}
		les := make([]latticeEngine, len(shapes))
		for i, shape := range shapes {
			les[i] = latticeEngine{shape: shape, eng: engine.Select(shape)}
		}
		buckets[area] = les
	}
	return buckets
}

// pickLattice draws uniformly from the area buckets first, then uniformly
// from the shapes within that bucket — the same two-level choice
// main_rand1 makes, which is why a lattice in a small bucket is sampled far
// more often than one sharing a large bucket with many siblings.
func pickLattice(buckets map[int64][]latticeEngine, areas []int64) latticeEngine {
	area := areas[rand.Intn(len(areas))]
	bucket := buckets[area]
	return bucket[rand.Intn(len(bucket))]
}

// sampleOne draws a random initial state on le and ticks it forward until a
// configuration repeats, returning the lattice, the period between the two
// occurrences, and the cells at the first occurrence — exactly what
// spacetime.Analyze needs.
func sampleOne(le latticeEngine) (torus.Shape, int64, []geom.Vec2) {
	cur := le.eng.RandCells()
	seen := make(map[string]int64)

	var t int64
	for {
		key := cellKey(cur)
		if t0, ok := seen[key]; ok {
			return le.shape, t - t0, cur
		}
		seen[key] = t
		cur = le.eng.TickCells(cur)
		t++
	}
}

// cellKey canonicalizes cells into a sorted, stable string so that two
// decodes of the same configuration — in particular SetEngine.Decode, whose
// map-range order isn't stable — compare equal.
func cellKey(cells []geom.Vec2) string {
	sorted := append([]geom.Vec2(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var b strings.Builder
	for _, c := range sorted {
		fmt.Fprintf(&b, "%d,%d;", c.X, c.Y)
	}
	return b.String()
}

// resultKey is the dedup key for a fully analysed record.Result: its own
// wire encoding, byte for byte.
func resultKey(r record.Result) string {
	data, err := gojson.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", r)
	}
	return string(data)
}

// Run starts runtimecfg.Threads(cfg.Threads) workers, each repeatedly
// sampling a random lattice and trajectory and feeding every analysed orbit
// it has not already sent itself onto the returned channel (deduplication is
// per worker, so two workers can each send the same orbit; buffered to 1024, matching the
// original driver's bounded channel). Workers run until ctx is cancelled, at
// which point the channel is drained and closed. A 60s heartbeat is logged
// while sampling continues, mirroring the original driver's periodic
// progress report in place of a literal elapsed-since-last-result readout.
func Run(ctx context.Context, log zerolog.Logger, cfg Config) <-chan record.Result {
	buckets := buildBuckets(cfg.MinArea, cfg.MaxArea)
	areas := make([]int64, 0, len(buckets))
	for area := range buckets {
		areas = append(areas, area)
	}

	out := make(chan record.Result, 1024)
	if len(areas) == 0 {
		close(out)
		return out
	}

	workers := runtimecfg.Threads(cfg.Threads)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seen := make(map[string]struct{})
			for ctx.Err() == nil {
				le := pickLattice(buckets, areas)
				shape, period, gen0 := sampleOne(le)

				for _, orbit := range spacetime.Analyze(shape, period, gen0) {
					r := record.Result{Lattice: orbit.Lattice, Cells: orbit.Cells}
					key := resultKey(r)
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}

					select {
					case out <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	stop := make(chan struct{})
	go logging.Heartbeat(60*time.Second, stop, func() {
		log.Info().Msg("sampler heartbeat")
	})

	go func() {
		wg.Wait()
		close(stop)
		close(out)
	}()

	return out
}
