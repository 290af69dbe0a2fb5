package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores one parsed copy per configuration type so the expensive
	// env parsing runs at most once per type for the process lifetime.
	cache sync.Map // reflect.Type -> any

	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment before any
// parsing takes place. Later files never override variables already set.
// With no arguments it loads the default ./.env file, if present.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// Load populates the provided configuration struct from environment
// variables based on `env` field tags. Each unique configuration type is
// parsed once and cached; subsequent calls for the same type are served from
// the cache.
//
// The default .env file is loaded lazily before the first parse; a missing
// file is not an error.
//
// Example:
//
//	type WorkerConfig struct {
//	    Concurrency int `env:"WORKER_CONCURRENCY" envDefault:"4"`
//	    QueueSize   int `env:"WORKER_QUEUE_SIZE" envDefault:"0"`
//	}
//
//	var cfg WorkerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*v)
	if cached, ok := cache.Load(key); ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// First successful parse wins; a concurrent loader may have stored an
	// identical copy already.
	actual, _ := cache.LoadOrStore(key, *v)
	*v = actual.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Useful for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

// Reload bypasses and refreshes the cache for the given configuration type,
// re-parsing the current process environment. Handy in tests that mutate the
// environment between loads.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache.Store(reflect.TypeOf(*v), *v)
	return nil
}
