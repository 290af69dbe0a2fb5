package executor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Pool is an Executor backed by a fixed set of worker goroutines pulling
// from a shared submission buffer.
type Pool struct {
	size   int
	tasks  chan func()
	logger *slog.Logger

	mu       sync.Mutex
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	stopping atomic.Bool
}

// NewPool creates a worker pool executor. The pool must be started with
// Start before it accepts work.
func NewPool(opts ...PoolOption) *Pool {
	options := &poolOptions{
		size:       1,
		bufferSize: 64,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Pool{
		size:   options.size,
		tasks:  make(chan func(), options.bufferSize),
		logger: options.logger,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return ErrPoolAlreadyStarted
	}

	p.ctx, p.cancel = context.WithCancel(ctx)
	p.stopping.Store(false)

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Info("executor pool started",
		slog.Int("size", p.size),
		slog.Int("buffer", cap(p.tasks)))

	return nil
}

// Stop shuts the pool down, waiting for in-flight work to finish. Work still
// sitting in the submission buffer is discarded. After Stop, Execute falls
// back to running work on the caller's goroutine.
func (p *Pool) Stop() error {
	p.mu.Lock()
	if p.cancel == nil {
		p.mu.Unlock()
		return ErrPoolNotStarted
	}

	p.stopping.Store(true)
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	cancel()
	p.wg.Wait()

	p.logger.Info("executor pool stopped")

	return nil
}

// Run starts the pool and returns a function suitable for errgroup.
func (p *Pool) Run(ctx context.Context) func() error {
	return func() error {
		if err := p.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()

		return p.Stop()
	}
}

// Execute hands fn to a pool worker. When the pool is not running, fn is
// executed on the caller's goroutine instead of being dropped, so callers
// relying on the executor for progress never stall.
func (p *Pool) Execute(fn func()) {
	if fn == nil {
		return
	}

	p.mu.Lock()
	ctx := p.ctx
	started := p.cancel != nil
	p.mu.Unlock()

	if !started || p.stopping.Load() {
		p.run(fn)
		return
	}

	select {
	case p.tasks <- fn:
	case <-ctx.Done():
		p.run(fn)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case fn := <-p.tasks:
			p.run(fn)
		}
	}
}

// run executes a single unit of work, containing panics so one bad task
// never takes down a worker goroutine.
func (p *Pool) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked",
				slog.Any("panic", r))
		}
	}()

	fn()
}
