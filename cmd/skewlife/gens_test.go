package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skewlife/torus"
)

func TestParseShape(t *testing.T) {
	shape, err := parseShape("4 4 1")
	require.NoError(t, err)
	assert.Equal(t, torus.Shape{MX: 4, MY: 4, SYX: 1}, shape)
}

func TestParseShape_RejectsWrongFieldCount(t *testing.T) {
	_, err := parseShape("4 4")
	assert.Error(t, err)
}

func TestParseShape_RejectsNonInteger(t *testing.T) {
	_, err := parseShape("4 x 1")
	assert.Error(t, err)
}
