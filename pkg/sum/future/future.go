package future

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCanceled is the error a future reports after Cancel.
var ErrCanceled = errors.New("future canceled")

// Func is the signature accepted by FromFunc.
type Func[T any] func() (T, error)

// Future is a pending value that is completed exactly once and can be
// read by any number of goroutines. The first completion wins; later
// completions are ignored. The async combinators of this module accept
// and produce futures wherever the synchronous form takes a plain value.
type Future[T any] struct {
	completed uint32
	done      chan struct{}

	value T
	err   error
}

// New creates an uncompleted future. It must be completed manually via
// Complete, Fail or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// FromFunc runs fn in its own goroutine and returns a future holding
// its eventual result.
func FromFunc[T any](fn Func[T]) *Future[T] {
	f := New[T]()

	go func() {
		v, err := fn()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	}()

	return f
}

// Resolved returns an already-completed successful future.
func Resolved[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

// Failed returns an already-completed failed future.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Complete completes the future with a value. Ignored if already completed.
func (f *Future[T]) Complete(v T) {
	f.settle(v, nil)
}

// Fail completes the future with an error. Ignored if already completed.
func (f *Future[T]) Fail(err error) {
	f.settle(*new(T), err)
}

// Cancel completes the future with ErrCanceled. Ignored if already completed.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

func (f *Future[T]) settle(v T, err error) {
	if atomic.CompareAndSwapUint32(&f.completed, 0, 1) {
		f.value = v
		f.err = err
		close(f.done)
	}
}

// Get blocks until the future completes or ctx is done, whichever comes
// first. All readers observe the same value.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

// Done returns a channel closed on completion.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
