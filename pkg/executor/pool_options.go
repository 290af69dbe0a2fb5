package executor

import "log/slog"

// PoolOption is a functional option for configuring a pool executor.
type PoolOption func(*poolOptions)

type poolOptions struct {
	size       int
	bufferSize int
	logger     *slog.Logger
}

// WithPoolSize sets the number of worker goroutines.
func WithPoolSize(n int) PoolOption {
	return func(o *poolOptions) {
		if n > 0 {
			o.size = n
		}
	}
}

// WithBufferSize sets the capacity of the submission buffer.
func WithBufferSize(n int) PoolOption {
	return func(o *poolOptions) {
		if n >= 0 {
			o.bufferSize = n
		}
	}
}

// WithLogger sets the logger used for pool lifecycle and panic reporting.
func WithLogger(logger *slog.Logger) PoolOption {
	return func(o *poolOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
