package executor_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/asynckit/pkg/executor"
)

func TestInline(t *testing.T) {
	t.Parallel()

	t.Run("runs synchronously on the caller goroutine", func(t *testing.T) {
		var ran bool
		executor.Inline().Execute(func() { ran = true })
		assert.True(t, ran, "inline execution must complete before Execute returns")
	})

	t.Run("nil work is a no-op", func(t *testing.T) {
		assert.NotPanics(t, func() {
			executor.Inline().Execute(nil)
		})
	})
}

func TestGoroutine(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	done := make(chan struct{})

	executor.Goroutine().Execute(func() {
		ran.Store(true)
		close(done)
	})

	<-done
	assert.True(t, ran.Load())
}

func TestFunc(t *testing.T) {
	t.Parallel()

	var calls int
	e := executor.Func(func(fn func()) {
		calls++
		fn()
	})

	var ran bool
	e.Execute(func() { ran = true })

	assert.True(t, ran)
	assert.Equal(t, 1, calls)
}
