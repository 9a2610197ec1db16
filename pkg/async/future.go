package async

import (
	"context"
	"sync"
	"time"
)

// Future holds the result of an asynchronous computation.
// A future settles exactly once; every Await after that returns the same result.
type Future[U any] struct {
	once  sync.Once
	done  chan struct{}
	value U
	err   error
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// settle records the result and releases waiters. Only the first call has effect.
func (f *Future[U]) settle(value U, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future settles and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for the result at most timeout.
// ErrTimeout is returned when the future is still pending; the computation keeps running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.value, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel closed once the future settles.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the future has settled, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in its own goroutine and returns a future for its result.
// A context canceled before fn starts settles the future with ctx.Err() and fn is never called.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		if err := ctx.Err(); err != nil {
			var zero U
			f.settle(zero, err)
			return
		}
		f.settle(fn(ctx, param))
	}()

	return f
}

// Resolved returns an already settled future.
// Useful when an operation can decide its outcome without doing any work.
func Resolved[U any](value U, err error) *Future[U] {
	f := newFuture[U]()
	f.settle(value, err)
	return f
}

// WaitAll waits for every future and returns their values in order.
// The first error encountered in slice order is returned together with the values
// collected so far.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, 0, len(futures))
	for _, f := range futures {
		v, err := f.Await()
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}

// WaitAny returns the index and result of the first future to settle.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	type result struct {
		index int
		value U
		err   error
	}

	// Buffered so losing goroutines never block once a winner is read.
	ch := make(chan result, len(futures))
	for i, f := range futures {
		go func(i int, f *Future[U]) {
			v, err := f.Await()
			ch <- result{index: i, value: v, err: err}
		}(i, f)
	}

	r := <-ch
	return r.index, r.value, r.err
}
