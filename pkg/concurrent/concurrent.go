// Package concurrent provides small fan-out helpers over sequence iterators.
package concurrent

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/deskshell/deskshell/pkg/sequence"
)

// ForEach runs action for every element in its own goroutine and waits for
// all of them. The first error encountered is returned.
func ForEach[T any](i *sequence.Iterator[T], action func(T) error) error {
	var eg errgroup.Group
	next, stop := i.Pull()
	defer stop()

	for {
		v, ok := next()
		if !ok {
			break
		}
		eg.Go(func() error {
			return action(v)
		})
	}
	return eg.Wait()
}

// Map applies fn to every element in parallel, preserving input order.
// workers limits the number of goroutines; workers <= 0 means one per element.
func Map[T, R any](i *sequence.Iterator[T], workers int, fn func(T) R) []R {
	in := i.Collect()
	out := make([]R, len(in))
	if len(in) == 0 {
		return out
	}
	if workers <= 0 || workers > len(in) {
		workers = len(in)
	}

	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx] = fn(in[idx])
			}
		}()
	}
	for idx := range in {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()
	return out
}
