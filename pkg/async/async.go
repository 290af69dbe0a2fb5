package async

import (
	"context"
)

// Async executes a function asynchronously and returns a Future settled with
// its outcome. The function accepts a context.Context and a parameter of any
// type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	p := NewPromise[U]()

	go func() {
		// Early exit prevents doing work when context is pre-canceled
		select {
		case <-ctx.Done():
			p.Reject(ctx.Err())
			return
		default:
		}

		p.Complete(fn(ctx, param))
	}()

	return p.Future()
}

// WaitAll waits for all futures to settle and returns a slice of their
// results and an error if any of the futures failed.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to settle and returns the index of
// the settled future, its result, and any error it might have produced.
// Note: This function registers one completion handler per future; handlers
// for the remaining futures fire naturally when those futures settle.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	done := make(chan struct {
		index  int
		result U
		err    error
	})

	for i, future := range futures {
		index := i
		future.OnComplete(func(result U, err error) {
			select {
			case done <- struct {
				index  int
				result U
				err    error
			}{index, result, err}:
			default:
				// Another future settled first; drop this one.
			}
		})
	}

	res := <-done
	return res.index, res.result, res.err
}
