package executor

// Executor runs zero-argument units of work per its own policy, synchronously
// or asynchronously. It is the only capability schedulers in this module
// require from their execution backend.
type Executor interface {
	Execute(fn func())
}

// Func adapts an ordinary function to the Executor interface.
type Func func(fn func())

// Execute calls f(fn).
func (f Func) Execute(fn func()) {
	f(fn)
}

type inline struct{}

// Inline returns an executor that runs each unit of work synchronously on
// the caller's goroutine.
func Inline() Executor {
	return inline{}
}

func (inline) Execute(fn func()) {
	if fn == nil {
		return
	}
	fn()
}

type goroutine struct{}

// Goroutine returns an executor that runs each unit of work on its own
// goroutine. Execution order between units is not defined.
func Goroutine() Executor {
	return goroutine{}
}

func (goroutine) Execute(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}
