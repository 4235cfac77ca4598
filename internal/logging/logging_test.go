package logging

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime_ReturnsCallbackValue(t *testing.T) {
	log := New(false)
	got := Time(log, "unit test block", func() int { return 42 })
	assert.Equal(t, 42, got)
}

func TestHeartbeat_FiresUntilStopped(t *testing.T) {
	var count atomic.Int32
	stop := make(chan struct{})

	done := make(chan struct{})
	go func() {
		Heartbeat(5*time.Millisecond, stop, func() { count.Add(1) })
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	close(stop)
	<-done

	assert.GreaterOrEqual(t, count.Load(), int32(1))
}
