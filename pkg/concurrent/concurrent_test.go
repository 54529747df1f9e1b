package concurrent

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskshell/deskshell/pkg/sequence"
)

func TestForEachVisitsEverything(t *testing.T) {
	var sum atomic.Int64
	err := ForEach(sequence.From([]int{1, 2, 3, 4}), func(v int) error {
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(sequence.From([]int{1, 2, 3}), func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestMapPreservesOrder(t *testing.T) {
	got := Map(sequence.From([]int{3, 1, 2}), 2, func(v int) int { return v * 10 })
	assert.Equal(t, []int{30, 10, 20}, got)
}

func TestMapEmptyInput(t *testing.T) {
	got := Map(sequence.From([]int(nil)), 4, func(v int) int { return v })
	assert.Empty(t, got)
}
