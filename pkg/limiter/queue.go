package limiter

import (
	"sync"
	"sync/atomic"
)

// pendingQueue is a concurrency-safe FIFO with an optional capacity bound.
//
// In the default mode the bound is soft: the capacity check reads an atomic
// length counter without taking the queue lock, so concurrent offers racing
// past the check may briefly overshoot the bound by a few entries. This
// keeps admission non-blocking under heavy concurrent submission. Strict
// mode serializes the check and the insertion under the lock, trading a
// hard bound for contention on the submission path.
type pendingQueue[T any] struct {
	maxSize int // 0 means unbounded
	strict  bool

	mu     sync.Mutex
	items  []T
	length atomic.Int64
}

func newPendingQueue[T any](maxSize int, strict bool) *pendingQueue[T] {
	return &pendingQueue[T]{
		maxSize: maxSize,
		strict:  strict,
	}
}

// offer appends an item, reporting false if the queue is at capacity.
func (q *pendingQueue[T]) offer(item T) bool {
	if q.strict && q.maxSize > 0 {
		q.mu.Lock()
		defer q.mu.Unlock()
		if len(q.items) >= q.maxSize {
			return false
		}
		q.items = append(q.items, item)
		q.length.Add(1)
		return true
	}

	if q.maxSize > 0 && int(q.length.Load()) >= q.maxSize {
		return false
	}

	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.length.Add(1)
	return true
}

// poll removes and returns the oldest item, reporting false when empty.
func (q *pendingQueue[T]) poll() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	item := q.items[0]
	var zero T
	q.items[0] = zero // release the reference for GC
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil // reset backing array once drained
	}
	q.length.Add(-1)
	return item, true
}

func (q *pendingQueue[T]) len() int {
	return int(q.length.Load())
}
