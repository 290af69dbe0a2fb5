// Package limiter provides admission control for asynchronous work: it
// accepts an unbounded stream of job submissions, runs at most a fixed
// number of them concurrently, and queues the rest in FIFO order.
//
// Every submission immediately receives a proxy future, regardless of when
// the job actually runs. The proxy is settled exactly once with the job's
// outcome: the produced future's success or failure, the producer's
// synchronous error or panic, ErrNilFuture for a producer that returned
// nothing, or ErrCapacityReached when the pending queue was full at
// submission time.
//
// The package is organised around three cooperating parts:
//
//   - a counting permit semaphore bounding concurrently active jobs
//   - a FIFO pending queue, unbounded or bounded
//   - a pump loop that converts free permits plus queued jobs into
//     running work, re-triggered by every submission and every completion
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/asynckit/pkg/async"
//	    "github.com/dmitrymomot/asynckit/pkg/limiter"
//	)
//
//	l, err := limiter.New[[]byte](8, limiter.WithMaxQueueSize(1024))
//	if err != nil {
//	    return err
//	}
//
//	fut := l.Submit(func() (*async.Future[[]byte], error) {
//	    return fetchAsync(url), nil
//	})
//
//	body, err := fut.Await()
//
// Submission never blocks. The observers Queued, Active,
// RemainingQueueCapacity, and RemainingActiveCapacity are advisory
// snapshots only — they may be stale the moment they are read and must not
// be treated as a linearizable guarantee.
//
// # Cancellation
//
// Cancelling the proxy future while its job is still queued prevents the
// producer from ever being invoked; the job is dropped at zero concurrency
// cost when the pump reaches it. Once a job is running, cancellation is
// delegated to the produced future's own semantics; the limiter still
// reclaims the job's permit exactly once when that future settles.
//
// # Queue bound semantics
//
// The queue bound is soft by default: the capacity check is lock-free and
// races with concurrent insertions, so heavy concurrent submission may
// briefly overshoot the bound by a few entries. This is a deliberate trade
// that keeps submission non-blocking. Deployments that need a hard bound
// opt into WithStrictQueueBound, which serializes the check with the
// insertion.
//
// # Execution model
//
// Pump cycles and completion callbacks run on the configured executor
// (executor.Inline by default, meaning submitters and completers drive the
// pump on their own goroutines). Completion handlers are delivered on fresh
// goroutines, so arbitrarily long chains of already-completed futures never
// grow any single call stack.
package limiter
