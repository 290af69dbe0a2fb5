package limiter

// Config defines limiter settings loadable from the environment, e.g. via
// the config package.
type Config struct {
	MaxConcurrency   int  `env:"LIMITER_MAX_CONCURRENCY" envDefault:"1"`        // Maximum number of jobs running at once.
	MaxQueueSize     int  `env:"LIMITER_MAX_QUEUE_SIZE" envDefault:"0"`         // Pending queue capacity; 0 means unbounded.
	StrictQueueBound bool `env:"LIMITER_STRICT_QUEUE_BOUND" envDefault:"false"` // Serialize the queue capacity check with insertion.
}
