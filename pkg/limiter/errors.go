package limiter

import "errors"

// Common errors
var (
	// ErrInvalidConcurrency is returned when maxConcurrency is not positive.
	ErrInvalidConcurrency = errors.New("limiter: max concurrency must be positive")

	// ErrInvalidQueueSize is returned when the queue size is negative.
	ErrInvalidQueueSize = errors.New("limiter: max queue size must not be negative")

	// ErrCapacityReached is the failure carried by the proxy future when the
	// pending queue was full at submission time.
	ErrCapacityReached = errors.New("limiter: queue size has reached capacity")

	// ErrNilFuture is the failure carried by the proxy future when the
	// producer returned a nil future instead of a pending one.
	ErrNilFuture = errors.New("limiter: producer returned a nil future")

	// ErrProducerFailure wraps errors raised while invoking the producer,
	// including recovered panics. The original cause is joined and remains
	// checkable with errors.Is.
	ErrProducerFailure = errors.New("limiter: producer failed before returning a future")
)
