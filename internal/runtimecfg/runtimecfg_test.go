package runtimecfg

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreads_OverrideWins(t *testing.T) {
	assert.Equal(t, 3, Threads(3))
}

func TestThreads_DefaultsToNumCPU(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), Threads(0))
}

func TestThreads_NeverBelowOne(t *testing.T) {
	assert.GreaterOrEqual(t, Threads(0), 1)
}
