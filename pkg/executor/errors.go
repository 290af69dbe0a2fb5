package executor

import "errors"

var (
	// ErrPoolAlreadyStarted is returned when Start is called on a running pool.
	ErrPoolAlreadyStarted = errors.New("executor: pool already started")

	// ErrPoolNotStarted is returned when Stop is called on a pool that is not running.
	ErrPoolNotStarted = errors.New("executor: pool not started")
)
