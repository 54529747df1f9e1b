// Package sequence provides a minimal chainable iterator used for the
// projection-style queries in the engine (taskbar filtering, asset fan-out).
package sequence

import (
	"iter"
	"sort"
)

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates an Iterator over a slice.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// FromMap creates an Iterator over a map's values. Order is unspecified.
func FromMap[K comparable, T any](data map[K]T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Seq exposes the underlying sequence function.
func (i *Iterator[T]) Seq() iter.Seq[T] { return i.seq }

// Pull converts the iterator to pull style. The caller must call stop.
func (i *Iterator[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(i.seq)
}

// Filter keeps the elements for which keep returns true.
func (i *Iterator[T]) Filter(keep func(T) bool) *Iterator[T] {
	src := i.seq
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			src(func(v T) bool {
				if !keep(v) {
					return true
				}
				return yield(v)
			})
		},
	}
}

// Collect exhausts the iterator into a slice.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Count exhausts the iterator and returns the number of elements.
func (i *Iterator[T]) Count() int {
	n := 0
	i.seq(func(T) bool {
		n++
		return true
	})
	return n
}

// Sorted collects and sorts with the given less function.
func (i *Iterator[T]) Sorted(less func(a, b T) bool) []T {
	out := i.Collect()
	sort.Slice(out, func(x, y int) bool { return less(out[x], out[y]) })
	return out
}

// Map transforms each element. A package-level function because Go methods
// cannot introduce type parameters.
func Map[T, R any](i *Iterator[T], fn func(T) R) *Iterator[R] {
	src := i.seq
	return &Iterator[R]{
		seq: func(yield func(R) bool) {
			src(func(v T) bool {
				return yield(fn(v))
			})
		},
	}
}
