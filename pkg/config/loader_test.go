package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/config"
	"github.com/dmitrymomot/asynckit/pkg/limiter"
)

type loaderConfig struct {
	Name    string `env:"LOADER_TEST_NAME" envDefault:"default_name"`
	Count   int    `env:"LOADER_TEST_COUNT" envDefault:"42"`
	Enabled bool   `env:"LOADER_TEST_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Required string `env:"LOADER_TEST_REQUIRED,required"`
}

type cachedConfig struct {
	Value string `env:"LOADER_TEST_CACHED" envDefault:"initial"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("LOADER_TEST_NAME", "custom_name")
	t.Setenv("LOADER_TEST_COUNT", "100")
	t.Setenv("LOADER_TEST_ENABLED", "false")

	var cfg loaderConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "custom_name", cfg.Name)
	assert.Equal(t, 100, cfg.Count)
	assert.Equal(t, false, cfg.Enabled)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[loaderConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("LOADER_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// The environment changed, but the cached copy is returned.
	t.Setenv("LOADER_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	// Reload re-parses the environment and refreshes the cache.
	var third cachedConfig
	require.NoError(t, config.Reload(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_LimiterConfig(t *testing.T) {
	t.Setenv("LIMITER_MAX_CONCURRENCY", "6")
	t.Setenv("LIMITER_MAX_QUEUE_SIZE", "32")
	t.Setenv("LIMITER_STRICT_QUEUE_BOUND", "true")

	var cfg limiter.Config
	require.NoError(t, config.Reload(&cfg))

	assert.Equal(t, 6, cfg.MaxConcurrency)
	assert.Equal(t, 32, cfg.MaxQueueSize)
	assert.True(t, cfg.StrictQueueBound)

	l, err := limiter.NewFromConfig[string](cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, l.RemainingActiveCapacity())
	assert.Equal(t, 32, l.RemainingQueueCapacity())
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
