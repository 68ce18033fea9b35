// Package fanout maps a function over a slice with a fixed number of
// workers. The catalog reload uses it to read all content resources at once.
package fanout

import (
	"context"
	"sync"
)

// Map calls fn for every item on at most workers goroutines and returns the
// outputs in input order. Once ctx is done no further items are started;
// Map then waits for the running calls and returns ctx's error with the
// partial output. Items never started hold the zero value.
//
// workers below 1 means 1.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) R) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, ctx.Err()
	}

	workers = min(max(workers, 1), len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range next {
				out[i] = fn(ctx, items[i])
			}
		})
	}

feed:
	for i := range items {
		if ctx.Err() != nil {
			break
		}
		select {
		case next <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(next)
	wg.Wait()

	return out, ctx.Err()
}
