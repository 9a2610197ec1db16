// Package async provides single-settlement futures built on Go generics.
//
// A Future[U] is settled exactly once, either by the goroutine started with Async
// or up front via Resolved. Await blocks until settlement and always returns the
// same value/error pair afterwards, which matches the "resolve or reject once"
// contract of the host platform callbacks wrapped by the request package.
//
// # Usage
//
//	future := async.Async(ctx, "bh/r/user/info", func(ctx context.Context, url string) (User, error) {
//		return fetchUser(ctx, url)
//	})
//
//	user, err := future.Await()
//
// Computations that only report an error use ExecFuture:
//
//	f := async.Exec(ctx, record, sendPing)
//	_ = f // best-effort: callers may drop the future
//
// # Coordination
//
// WaitAll collects results in order and stops at the first error. WaitAny returns
// the first future to settle. ExecAll and ExecAny are the error-only equivalents.
//
// # Errors
//
//   - ErrTimeout: AwaitWithTimeout gave up before settlement
//   - ErrNoFutures: WaitAny/ExecAny called with nothing to wait for
//
// A context canceled before the computation starts settles the future with
// ctx.Err() without calling the function.
package async
