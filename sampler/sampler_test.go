package sampler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewlife/engine"
	"github.com/katalvlaran/skewlife/geom"
	"github.com/katalvlaran/skewlife/internal/logging"
	"github.com/katalvlaran/skewlife/torus"
)

func TestBuildBuckets_GroupsByArea(t *testing.T) {
	buckets := buildBuckets(4, 6)
	for area, les := range buckets {
		for _, le := range les {
			assert.Equal(t, area, le.shape.Area())
		}
	}
	assert.NotEmpty(t, buckets[4])
}

func TestCellKey_OrderIndependent(t *testing.T) {
	a := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 0}}
	b := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	assert.Equal(t, cellKey(a), cellKey(b))
}

func TestSampleOne_TerminatesWithPositivePeriod(t *testing.T) {
	shape := torus.Shape{MX: 2, MY: 2, SYX: 0}
	le := latticeEngine{shape: shape, eng: engine.Select(shape)}

	gotShape, period, _ := sampleOne(le)
	assert.Equal(t, shape, gotShape)
	assert.Greater(t, period, int64(0))
}

func TestRun_ClosesAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	log := logging.New(false)

	out := Run(ctx, log, Config{MinArea: 4, MaxArea: 4, Threads: 1})
	cancel()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-out:
			if !ok {
				return
			}
		case <-timeout:
			require.Fail(t, "Run did not close its channel after cancellation")
		}
	}
}
