package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCollect(t *testing.T) {
	got := From([]int{1, 2, 3, 4, 5}).
		Filter(func(v int) bool { return v%2 == 1 }).
		Collect()
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestMap(t *testing.T) {
	got := Map(From([]int{1, 2, 3}), func(v int) int { return v * 10 }).Collect()
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestSorted(t *testing.T) {
	got := FromMap(map[string]int{"a": 3, "b": 1, "c": 2}).
		Sorted(func(a, b int) bool { return a < b })
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, From([]string{"x", "y"}).Count())
	assert.Equal(t, 0, From([]string(nil)).Count())
}

func TestPullStopsEarly(t *testing.T) {
	next, stop := From([]int{1, 2, 3}).Pull()
	defer stop()
	v, ok := next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}
