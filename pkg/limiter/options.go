package limiter

import (
	"log/slog"

	"github.com/dmitrymomot/asynckit/pkg/executor"
)

// Option is a functional option for configuring a Limiter.
type Option func(*options)

type options struct {
	maxQueueSize int
	strictBound  bool
	exec         executor.Executor
	logger       *slog.Logger
}

// WithMaxQueueSize bounds the pending queue to n jobs; 0 means unbounded.
// The bound is soft by default, see WithStrictQueueBound.
func WithMaxQueueSize(n int) Option {
	return func(o *options) {
		o.maxQueueSize = n
	}
}

// WithStrictQueueBound makes the queue bound hard by serializing the
// capacity check with the insertion. Without it the bound check is
// lock-free and concurrent submissions may briefly overshoot the bound.
func WithStrictQueueBound() Option {
	return func(o *options) {
		o.strictBound = true
	}
}

// WithExecutor sets the executor pump cycles and completion callbacks run
// on. Defaults to executor.Inline().
func WithExecutor(exec executor.Executor) Option {
	return func(o *options) {
		if exec != nil {
			o.exec = exec
		}
	}
}

// WithLogger sets the logger used for debug-level admission events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
