package async

import (
	"context"
	"time"
)

// ExecFuture is a future for a computation that yields only an error.
type ExecFuture struct {
	f *Future[struct{}]
}

// Await blocks until the computation finishes and returns its error.
func (e *ExecFuture) Await() error {
	_, err := e.f.Await()
	return err
}

// AwaitWithTimeout waits at most timeout for the computation to finish.
func (e *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	_, err := e.f.AwaitWithTimeout(timeout)
	return err
}

// IsComplete reports whether the computation has finished.
func (e *ExecFuture) IsComplete() bool {
	return e.f.IsComplete()
}

// Exec runs fn(ctx, param) asynchronously.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	return &ExecFuture{f: Async(ctx, param, func(ctx context.Context, p T) (struct{}, error) {
		return struct{}{}, fn(ctx, p)
	})}
}

// Done returns an ExecFuture that has already finished with err.
func Done(err error) *ExecFuture {
	return &ExecFuture{f: Resolved(struct{}{}, err)}
}

// ExecAll waits for all futures and returns the first error in slice order.
func ExecAll(futures ...*ExecFuture) error {
	for _, f := range futures {
		if err := f.Await(); err != nil {
			return err
		}
	}
	return nil
}

// ExecAny returns the index and error of the first future to finish.
func ExecAny(futures ...*ExecFuture) (int, error) {
	inner := make([]*Future[struct{}], len(futures))
	for i, f := range futures {
		inner[i] = f.f
	}
	idx, _, err := WaitAny(inner...)
	return idx, err
}
