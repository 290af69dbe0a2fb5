package executor_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit/pkg/executor"
)

func TestPool_Lifecycle(t *testing.T) {
	t.Parallel()

	t.Run("start and stop", func(t *testing.T) {
		p := executor.NewPool(executor.WithPoolSize(2))
		require.NoError(t, p.Start(context.Background()))
		require.NoError(t, p.Stop())
	})

	t.Run("double start fails", func(t *testing.T) {
		p := executor.NewPool()
		require.NoError(t, p.Start(context.Background()))
		defer p.Stop()

		assert.ErrorIs(t, p.Start(context.Background()), executor.ErrPoolAlreadyStarted)
	})

	t.Run("stop before start fails", func(t *testing.T) {
		p := executor.NewPool()
		assert.ErrorIs(t, p.Stop(), executor.ErrPoolNotStarted)
	})
}

func TestPool_Execute(t *testing.T) {
	t.Parallel()

	t.Run("executes submitted work", func(t *testing.T) {
		p := executor.NewPool(executor.WithPoolSize(4))
		require.NoError(t, p.Start(context.Background()))
		defer p.Stop()

		const n = 100
		var done sync.WaitGroup
		var count atomic.Int64
		done.Add(n)
		for i := 0; i < n; i++ {
			p.Execute(func() {
				count.Add(1)
				done.Done()
			})
		}

		done.Wait()
		assert.Equal(t, int64(n), count.Load())
	})

	t.Run("falls back to caller goroutine when not started", func(t *testing.T) {
		p := executor.NewPool()

		var ran bool
		p.Execute(func() { ran = true })
		assert.True(t, ran, "work must run inline when the pool is not running")
	})

	t.Run("falls back to caller goroutine after stop", func(t *testing.T) {
		p := executor.NewPool()
		require.NoError(t, p.Start(context.Background()))
		require.NoError(t, p.Stop())

		var ran bool
		p.Execute(func() { ran = true })
		assert.True(t, ran)
	})

	t.Run("recovers panicking work", func(t *testing.T) {
		p := executor.NewPool(executor.WithPoolSize(1))
		require.NoError(t, p.Start(context.Background()))
		defer p.Stop()

		p.Execute(func() { panic("boom") })

		// Worker must survive the panic and keep serving tasks.
		done := make(chan struct{})
		p.Execute(func() { close(done) })

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not survive a panicking task")
		}
	})
}

func TestPool_StopWaitsForInflightWork(t *testing.T) {
	t.Parallel()

	p := executor.NewPool(executor.WithPoolSize(1))
	require.NoError(t, p.Start(context.Background()))

	started := make(chan struct{})
	var finished atomic.Bool
	p.Execute(func() {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	require.NoError(t, p.Stop())
	assert.True(t, finished.Load(), "Stop must wait for in-flight work")
}
