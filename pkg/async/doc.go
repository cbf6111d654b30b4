// Package async provides generic futures and a keyed all-settled join for
// coordinating concurrent fan-out work.
//
// Go starts a function in its own goroutine and returns a *Future for its
// outcome. The caller can block with Await, bound the wait with
// AwaitWithTimeout, or poll with IsDone. A panic inside the supplied function
// is recovered into a PanicError result so that user-supplied callbacks cannot
// take the process down.
//
// Settle joins a map of futures: it waits for every one of them and returns a
// per-key Result. It never short-circuits on the first error, which makes it
// suitable for aggregation passes that must observe every branch before
// committing anything.
//
// # Usage
//
//	futures := map[string]*async.Future[int]{
//	    "a": async.Go(ctx, slowComputeA),
//	    "b": async.Go(ctx, slowComputeB),
//	}
//	for key, res := range async.Settle(futures) {
//	    if res.Err != nil {
//	        log.Printf("%s failed: %v", key, res.Err)
//	        continue
//	    }
//	    log.Printf("%s = %d", key, res.Value)
//	}
//
// # Error Handling
//
// Await returns the error produced by the computation, a PanicError if it
// panicked, or the context error if the context was cancelled before the
// computation started. AwaitWithTimeout additionally returns ErrTimeout.
package async
