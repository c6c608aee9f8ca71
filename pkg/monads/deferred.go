package monads

import (
	"context"
	"sync"
)

// Deferred is a value that becomes known later: it is settled exactly once,
// either resolved with a value or rejected with an error.
type Deferred[T any] struct {
	done      chan struct{}
	once      sync.Once
	mu        sync.Mutex
	callbacks []func()
	value     T
	err       error
}

// NewDeferred returns an unsettled Deferred together with the functions that
// settle it. Only the first call to either function has an effect.
func NewDeferred[T any]() (d *Deferred[T], resolve func(T), reject func(error)) {
	d = &Deferred[T]{done: make(chan struct{})}
	resolve = func(v T) { d.settle(v, nil) }
	reject = func(err error) {
		if IsNil(err) {
			err = ErrNilError
		}
		var zero T
		d.settle(zero, err)
	}
	return d, resolve, reject
}

// Resolved returns a Deferred already resolved with v.
func Resolved[T any](v T) *Deferred[T] {
	d, resolve, _ := NewDeferred[T]()
	resolve(v)
	return d
}

// Rejected returns a Deferred already rejected with err.
func Rejected[T any](err error) *Deferred[T] {
	d, _, reject := NewDeferred[T]()
	reject(err)
	return d
}

// WrapDeferred adapts the deferred returned by p into a Deferred Result that
// always resolves: with a Success once the inner deferred resolves, with a
// Failure once it rejects. A panic in p, or a nil deferred, resolves the
// outer one with a Failure right away.
func WrapDeferred[T any](p func() *Deferred[T]) *Deferred[Result[T]] {
	out, resolve, _ := NewDeferred[Result[T]]()

	started := Attempt(p)
	if !started.Succeeded() {
		resolve(FailureFrom[*Deferred[T], T](started))
		return out
	}

	inner := started.Value()
	if inner == nil {
		resolve(Failure[T](ErrNilValue))
		return out
	}

	inner.Then(func() {
		v, err := inner.Wait()
		if err != nil {
			log.WithError(err).Debug("deferred: rejected")
			resolve(Failure[T](err))
			return
		}
		resolve(Success(v))
	})

	return out
}

// settle runs the callbacks after once.Do returns, so a callback may call
// resolve or reject on the same Deferred.
func (d *Deferred[T]) settle(v T, err error) {
	var callbacks []func()
	d.once.Do(func() {
		d.mu.Lock()
		d.value, d.err = v, err
		close(d.done)
		callbacks = d.callbacks
		d.callbacks = nil
		d.mu.Unlock()
	})

	for _, cb := range callbacks {
		cb()
	}
}

// Then registers f to run once d is settled. If d is already settled f runs
// immediately on the calling goroutine; otherwise it runs on the goroutine
// that settles d.
func (d *Deferred[T]) Then(f func()) {
	d.mu.Lock()
	if d.Settled() {
		d.mu.Unlock()
		f()
		return
	}
	d.callbacks = append(d.callbacks, f)
	d.mu.Unlock()
}

// Done returns a channel that is closed once d is settled.
func (d *Deferred[T]) Done() <-chan struct{} {
	return d.done
}

func (d *Deferred[T]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until d is settled.
func (d *Deferred[T]) Wait() (T, error) {
	<-d.done
	return d.value, d.err
}

// WaitContext blocks until d is settled or ctx is done. Giving up on the wait
// does not affect d.
func (d *Deferred[T]) WaitContext(ctx context.Context) (T, error) {
	select {
	case <-d.done:
		return d.value, d.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result waits for d and converts the outcome into a Result.
func (d *Deferred[T]) Result() Result[T] {
	return FromPair(d.Wait())
}
