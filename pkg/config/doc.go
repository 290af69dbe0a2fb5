// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (falling back to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using `env` field tags.
//   - Caches each successfully loaded configuration type so it is parsed
//     once for the lifetime of the process.
//   - Exposes MustLoad for configuration the process cannot start without,
//     and Reload for tests that mutate the environment between loads.
//
// # Usage
//
// Describe your configuration as a struct with `env` tags:
//
//	type LimiterConfig struct {
//	    MaxConcurrency int `env:"LIMITER_MAX_CONCURRENCY" envDefault:"1"`
//	    MaxQueueSize   int `env:"LIMITER_MAX_QUEUE_SIZE" envDefault:"0"`
//	}
//
// Then populate it:
//
//	import "github.com/dmitrymomot/asynckit/pkg/config"
//
//	var cfg LimiterConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Subsequent calls to config.Load for the same struct type are served from
// the in-memory cache without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors comparable with errors.Is:
// ErrParsingConfig, ErrLoadingEnvFiles, and ErrNilPointer. Parse failures
// join the underlying library error so its detail is preserved.
package config
