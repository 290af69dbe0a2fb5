// Package executor provides pluggable execution backends for zero-argument
// units of work.
//
// The Executor interface is deliberately minimal — a single Execute method —
// so that schedulers built on top of it stay agnostic about where and when
// their work actually runs. Three implementations are provided:
//
//   - Inline     — runs work synchronously on the caller's goroutine
//   - Goroutine  — runs each unit of work on its own goroutine
//   - Pool       — a fixed-size worker pool with a bounded submission buffer
//
// Inline is the natural default for lightweight coordination work (and is
// the default dispatcher of the limiter package). Pool is appropriate when
// callbacks may be expensive and their concurrency should itself be bounded;
// it follows a Start/Stop lifecycle and recovers panics so a single bad task
// never takes down a worker.
//
// # Usage
//
//	pool := executor.NewPool(
//	    executor.WithPoolSize(4),
//	    executor.WithBufferSize(128),
//	)
//	if err := pool.Start(ctx); err != nil {
//	    return err
//	}
//	defer pool.Stop()
//
//	pool.Execute(func() { doWork() })
//
// # Error Handling
//
// Lifecycle violations are reported with the package sentinels
// ErrPoolAlreadyStarted and ErrPoolNotStarted, checkable with errors.Is.
// Execute itself never fails: when a pool is not running, work falls back to
// the caller's goroutine rather than being dropped.
package executor
