package async

// Promise is the write side of a Future. It allows the producer of a value
// to settle the associated future exactly once: the first of Resolve, Reject,
// Complete, or Cancel wins and all later attempts report false.
type Promise[T any] struct {
	future *Future[T]
}

// NewPromise creates a pending promise and its associated future.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{future: newFuture[T]()}
}

// Future returns the read side handed out to consumers.
func (p *Promise[T]) Future() *Future[T] {
	return p.future
}

// Resolve settles the future successfully with the given value.
// Returns false if the future was already settled.
func (p *Promise[T]) Resolve(value T) bool {
	return p.future.settle(value, nil, false)
}

// Reject settles the future as failed with the given error.
// Returns false if the future was already settled.
func (p *Promise[T]) Reject(err error) bool {
	var zero T
	return p.future.settle(zero, err, false)
}

// Complete settles the future with both a result and an error, mirroring the
// (value, error) pair of the computation that produced them. A nil error
// means success.
func (p *Promise[T]) Complete(value T, err error) bool {
	return p.future.settle(value, err, false)
}

// Cancel settles the future as cancelled, equivalent to calling Cancel on
// the future itself.
func (p *Promise[T]) Cancel() bool {
	return p.future.Cancel()
}
