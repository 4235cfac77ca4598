package visited

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitSet_GetSet(t *testing.T) {
	b := New(10)
	assert.False(t, b.Get(5))
	b.Set(5)
	assert.True(t, b.Get(5))
	assert.False(t, b.Get(4))
	assert.False(t, b.Get(6))
}

func TestBitSet_SetIdempotent(t *testing.T) {
	b := New(8)
	b.Set(200)
	b.Set(200)
	assert.True(t, b.Get(200))
}

// TestBitSet_ConcurrentSet exercises the CAS retry loop: many goroutines
// hammer the same word, and every bit each one sets must still read back
// set afterward (no lost updates under 0->1-only transitions).
func TestBitSet_ConcurrentSet(t *testing.T) {
	b := New(12)
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(idx uint64) {
			defer wg.Done()
			b.Set(idx)
		}(uint64(i))
	}
	wg.Wait()

	for i := uint64(0); i < 64; i++ {
		assert.True(t, b.Get(i), "bit %d lost", i)
	}
}
