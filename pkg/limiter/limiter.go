package limiter

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/dmitrymomot/asynckit/pkg/async"
	"github.com/dmitrymomot/asynckit/pkg/executor"
)

// Producer is a unit of deferred work: a zero-argument function that starts
// an asynchronous operation and returns its future. A producer may fail
// synchronously by returning an error (or by panicking); returning a nil
// future is reported as ErrNilFuture.
type Producer[T any] func() (*async.Future[T], error)

// job pairs a queued producer with the proxy promise handed to the caller.
type job[T any] struct {
	id       uuid.UUID
	producer Producer[T]
	promise  *async.Promise[T]
}

// Limiter queues up asynchronous work and runs at most a fixed number of
// jobs concurrently. Excess submissions wait in a FIFO queue (optionally
// bounded); every submission immediately receives a proxy future that is
// settled with the job's eventual outcome.
//
// A Limiter is safe for concurrent use. Submit never blocks: admission is a
// non-blocking permit acquisition paired with a queue poll, and completions
// drive further admissions.
type Limiter[T any] struct {
	exec           executor.Executor
	logger         *slog.Logger
	permits        chan struct{}
	queue          *pendingQueue[*job[T]]
	maxConcurrency int
	maxQueueSize   int
}

// New creates a Limiter running at most maxConcurrency jobs at once.
// By default the pending queue is unbounded and pump cycles run inline on
// the submitting (or completing) goroutine; see the Option helpers.
func New[T any](maxConcurrency int, opts ...Option) (*Limiter[T], error) {
	if maxConcurrency <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, maxConcurrency)
	}

	options := &options{
		maxQueueSize: 0,
		exec:         executor.Inline(),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.maxQueueSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQueueSize, options.maxQueueSize)
	}

	return &Limiter[T]{
		exec:           options.exec,
		logger:         options.logger,
		permits:        make(chan struct{}, maxConcurrency),
		queue:          newPendingQueue[*job[T]](options.maxQueueSize, options.strictBound),
		maxConcurrency: maxConcurrency,
		maxQueueSize:   options.maxQueueSize,
	}, nil
}

// NewFromConfig creates a Limiter from an environment-driven Config.
// Options may still override the executor and logger.
func NewFromConfig[T any](cfg Config, opts ...Option) (*Limiter[T], error) {
	combined := make([]Option, 0, len(opts)+2)
	combined = append(combined, WithMaxQueueSize(cfg.MaxQueueSize))
	if cfg.StrictQueueBound {
		combined = append(combined, WithStrictQueueBound())
	}
	combined = append(combined, opts...)

	return New[T](cfg.MaxConcurrency, combined...)
}

// Submit enqueues a producer and returns a proxy future settled with the
// producer's eventual outcome. The producer runs as soon as the number of
// active jobs drops below the concurrency limit.
//
// If the pending queue is at capacity the returned future is already failed
// with ErrCapacityReached and the producer will never be invoked.
//
// Submit panics if producer is nil.
func (l *Limiter[T]) Submit(producer Producer[T]) *async.Future[T] {
	if producer == nil {
		panic("limiter: producer must not be nil")
	}

	j := &job[T]{
		id:       uuid.New(),
		producer: producer,
		promise:  async.NewPromise[T](),
	}

	if !l.queue.offer(j) {
		l.logger.Debug("submission rejected, queue at capacity",
			slog.String("job_id", j.id.String()),
			slog.Int("max_queue_size", l.maxQueueSize))
		j.promise.Reject(fmt.Errorf("%w: %d", ErrCapacityReached, l.maxQueueSize))
		return j.promise.Future()
	}

	l.exec.Execute(l.pump)

	return j.promise.Future()
}

// Queued returns the number of jobs waiting in the queue that have not
// started yet. The value is an instantaneous snapshot and may be stale the
// moment it is read.
func (l *Limiter[T]) Queued() int {
	return l.queue.len()
}

// Active returns the number of jobs currently running. The value is an
// instantaneous snapshot and may be stale the moment it is read.
func (l *Limiter[T]) Active() int {
	return len(l.permits)
}

// RemainingQueueCapacity returns how many more jobs can be queued before
// submissions start failing. For an unbounded queue it returns math.MaxInt.
func (l *Limiter[T]) RemainingQueueCapacity() int {
	if l.maxQueueSize == 0 {
		return math.MaxInt
	}
	if remaining := l.maxQueueSize - l.queue.len(); remaining > 0 {
		return remaining
	}
	return 0
}

// RemainingActiveCapacity returns how many more jobs can run without
// queueing.
func (l *Limiter[T]) RemainingActiveCapacity() int {
	return cap(l.permits) - len(l.permits)
}
