package limiter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/asynckit/pkg/async"
)

// tryAcquire claims one permit without blocking.
func (l *Limiter[T]) tryAcquire() bool {
	select {
	case l.permits <- struct{}{}:
		return true
	default:
		return false
	}
}

// release returns one permit. Every successful tryAcquire is matched by
// exactly one release, whatever path the job takes.
func (l *Limiter[T]) release() {
	<-l.permits
}

// grab pairs permit acquisition with a queue poll. It either returns a job
// holding a claimed permit, or returns nil having claimed nothing: a permit
// claimed against an empty queue is handed straight back so idle capacity is
// never hoarded.
func (l *Limiter[T]) grab() *job[T] {
	if !l.tryAcquire() {
		return nil
	}

	if j, ok := l.queue.poll(); ok {
		return j
	}

	l.release()
	return nil
}

// pump converts available permits and queued jobs into running work until it
// can no longer make progress. It is idempotent and safe to trigger
// redundantly from any goroutine: racing pumps contend on the permit
// semaphore, which only ever admits one winner per permit.
func (l *Limiter[T]) pump() {
	for {
		j := l.grab()
		if j == nil {
			return
		}

		// Jobs cancelled while still queued are dropped without ever
		// invoking the producer.
		if j.promise.Future().IsCancelled() {
			l.release()
			l.logger.Debug("dropping cancelled job",
				slog.String("job_id", j.id.String()))
			continue
		}

		l.invoke(j)
	}
}

// invoke runs the job's producer in the pump's current execution context and
// chains permit release and proxy settlement onto the produced future.
func (l *Limiter[T]) invoke(j *job[T]) {
	future, err := l.produce(j)
	if err != nil {
		l.release()
		l.logger.Debug("producer failed synchronously",
			slog.String("job_id", j.id.String()),
			slog.String("error", err.Error()))
		j.promise.Reject(errors.Join(ErrProducerFailure, err))
		return
	}

	if future == nil {
		l.release()
		j.promise.Reject(ErrNilFuture)
		return
	}

	future.OnComplete(func(value T, err error) {
		l.exec.Execute(func() {
			l.release()
			// Underlying failures pass through to the proxy verbatim. If the
			// caller already cancelled the proxy, settlement is a no-op and
			// only the permit release matters.
			j.promise.Complete(value, err)
			l.pump()
		})
	})
}

// produce invokes the producer, converting a panic into an ordinary error so
// a misbehaving job can never abort the pump or leak its permit.
func (l *Limiter[T]) produce(j *job[T]) (future *async.Future[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			future = nil
			err = fmt.Errorf("producer panicked: %v", r)
		}
	}()

	return j.producer()
}
