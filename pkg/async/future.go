package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation. A Future is
// settled exactly once, either through its owning Promise or by one of the
// package helpers such as Async.
type Future[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	settled   bool
	cancelled bool
	result    T
	err       error
	handlers  []func(T, error)
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Await waits for the future to settle and returns its result and error.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the future to settle with a timeout.
// If the timeout elapses before settlement, returns ErrTimeout. The future
// itself is unaffected and may still settle later.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// AwaitContext waits for the future to settle or the context to be done,
// whichever happens first. On context expiry the context's error is returned
// and the future is left untouched.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// IsComplete checks if the future has settled without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// IsCancelled reports whether the future was settled by cancellation.
func (f *Future[T]) IsCancelled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cancelled
}

// Cancel settles a pending future as cancelled: it completes with
// ErrCancelled and IsCancelled reports true from then on. Cancellation is
// cooperative — it does not interrupt a computation that is already running,
// it only marks the result as unwanted. Cancelling an already-settled future
// has no effect and returns false.
func (f *Future[T]) Cancel() bool {
	var zero T
	return f.settle(zero, ErrCancelled, true)
}

// OnComplete registers a handler invoked exactly once after the future
// settles, with the final result and error. If the future has already
// settled, the handler fires right away. Handlers always run on their own
// goroutine, so a handler registered against an already-settled future never
// grows the caller's stack; no ordering is defined between handlers.
func (f *Future[T]) OnComplete(fn func(T, error)) {
	if fn == nil {
		return
	}
	f.mu.Lock()
	if !f.settled {
		f.handlers = append(f.handlers, fn)
		f.mu.Unlock()
		return
	}
	result, err := f.result, f.err
	f.mu.Unlock()
	go fn(result, err)
}

// settle transitions the future to its terminal state. Returns false if the
// future was already settled; the first settlement wins.
func (f *Future[T]) settle(result T, err error, cancelled bool) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.settled = true
	f.cancelled = cancelled
	f.result = result
	f.err = err
	handlers := f.handlers
	f.handlers = nil
	close(f.done)
	f.mu.Unlock()

	for _, fn := range handlers {
		go fn(result, err)
	}
	return true
}
