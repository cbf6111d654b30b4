package async

import (
	"context"
	"fmt"
	"time"
)

// Future represents the eventual outcome of a computation started with Go.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Go starts fn in its own goroutine and returns a Future for its outcome.
//
// A panic inside fn is recovered and surfaced as the Future's error rather
// than crashing the process: callers hand arbitrary user-supplied functions
// to Go and a misbehaving one must become a result, not a crash. If ctx is
// already cancelled the Future completes immediately with the context error
// and fn never runs.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = PanicError{Value: r}
			}
		}()

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx)
	}()

	return f
}

// Resolved returns an already-completed Future carrying the given outcome.
func Resolved[T any](value T, err error) *Future[T] {
	f := &Future[T]{value: value, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Await blocks until the computation completes and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, in which case it returns ErrTimeout. The underlying goroutine
// keeps running; a timed-out Future can still be awaited again later.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsDone reports whether the computation has completed, without blocking.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Result is a settled per-key outcome produced by Settle.
type Result[T any] struct {
	Value T
	Err   error
}

// Settle waits for every future in the map and returns the outcome of each,
// keyed identically. Unlike a first-error join it never short-circuits:
// all branches are always driven to completion, so the returned map is a
// complete, order-independent picture of the whole fan-out.
func Settle[K comparable, T any](futures map[K]*Future[T]) map[K]Result[T] {
	results := make(map[K]Result[T], len(futures))
	for key, f := range futures {
		value, err := f.Await()
		results[key] = Result[T]{Value: value, Err: err}
	}
	return results
}

// PanicError wraps a value recovered from a panicking computation.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("%v", e.Value)
}
