// Package fanout runs a function over a slice with bounded concurrency.
// Results keep input order. Each call can be given its own deadline, and a
// panicking call is reported as that item's error instead of crashing the
// process.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrPanic marks a result whose call panicked.
var ErrPanic = errors.New("fanout: call panicked")

// Result is the outcome for one item. Err is non-nil on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// Options bound a Run.
type Options struct {
	// Workers is the maximum number of concurrent calls. Values below 1
	// mean one worker.
	Workers int
	// Timeout, when positive, is the deadline of each individual call.
	Timeout time.Duration
}

// Run calls fn for every item and waits for all calls to finish.
//
// An item still waiting for a worker when ctx ends records ctx.Err()
// without calling fn. Calls already started run to completion; fn must
// honor its context to stop early.
func Run[T, R any](ctx context.Context, opts Options, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(opts.Workers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}
			results[i] = call(ctx, opts.Timeout, item, fn)
		})
	}

	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, timeout time.Duration, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, p)}
		}
	}()

	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
