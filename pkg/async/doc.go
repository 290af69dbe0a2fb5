// Package async provides simple, generic primitives for running computations
// asynchronously and observing their completion.
//
// The package is centred around two types. Future represents the eventual
// result of an asynchronous operation and is the handle consumers hold: it
// can be waited on with Await, AwaitWithTimeout, or AwaitContext, polled with
// IsComplete, and observed with OnComplete callbacks. Promise is the write
// side of a Future: whoever holds the promise settles it exactly once via
// Resolve, Reject, Complete, or Cancel — the first settlement wins and every
// later attempt reports false.
//
// A Future can also be obtained by calling Async, which starts the supplied
// function in its own goroutine and immediately returns the future of its
// outcome. The helpers WaitAll and WaitAny make it easy to coordinate
// multiple concurrent tasks, either collecting every result or returning the
// first one to settle.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//	    "github.com/dmitrymomot/asynckit/pkg/async"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    future := async.Async(ctx, 42, func(_ context.Context, v int) (string, error) {
//	        time.Sleep(100 * time.Millisecond)
//	        return fmt.Sprintf("value is %d", v), nil
//	    })
//
//	    // do other work …
//	    res, err := future.Await()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res)
//	}
//
// Manually settled futures follow the promise pattern:
//
//	p := async.NewPromise[int]()
//	go func() { p.Resolve(42) }()
//	v, err := p.Future().Await()
//
// # Cancellation
//
// Cancel settles a pending future with ErrCancelled and marks it cancelled;
// IsCancelled lets cooperating schedulers skip work whose result nobody
// wants anymore. Cancellation is a terminal state like success or failure:
// it never un-settles a future and it does not interrupt a computation that
// is already running.
//
// # Error Handling
//
// Functions return the error produced by the user callback or one of the
// package sentinels (ErrTimeout, ErrCancelled, ErrNoFutures), all checkable
// with errors.Is.
//
// # Performance Considerations
//
// Futures are lightweight wrappers around a channel and a mutex. OnComplete
// handlers run on their own goroutine, so long chains of dependent futures
// do not grow any single call stack.
package async
