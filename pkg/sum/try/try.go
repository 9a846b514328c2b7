package try

import (
	"context"
	"errors"

	"github.com/ib-77/sum3/pkg/sum"
	"github.com/ib-77/sum3/pkg/sum/fault"
	"github.com/ib-77/sum3/pkg/sum/future"
)

// Predicate decides whether a recovered fault belongs to the allow-list
// of a TryCatching call.
type Predicate func(err error) bool

// OfType matches faults that are (or wrap) the concrete type E.
func OfType[E error]() Predicate {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// Is matches faults equal to (or wrapping) target, per errors.Is.
func Is(target error) Predicate {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// Match adapts an arbitrary check into a Predicate.
func Match(fn func(err error) bool) Predicate {
	return Predicate(fn)
}

// Trying executes block and classifies every way it can end: a normal
// return becomes a success, a returned error a failure, and a panic is
// recovered and wrapped as a failure. Unconditional catch-all; Trying
// itself never fails.
func Trying[T any](block func() (T, error)) (out sum.Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = sum.Fail[T](fault.FromPanic(r))
		}
	}()

	v, err := block()
	if err != nil {
		return sum.Fail[T](err)
	}
	return sum.Success(v)
}

// TryCatching is Trying restricted to an allow-list: a panic is
// converted to a failure only when some predicate matches the recovered
// fault, otherwise it is re-raised unchanged to the caller. A returned
// error is already a value and becomes a failure regardless of the list.
// An empty list degrades to Trying.
func TryCatching[T any](allowed []Predicate, block func() (T, error)) sum.Outcome[T] {
	out, rethrow := tryCatch(allowed, block)
	if rethrow != nil {
		panic(rethrow)
	}
	return out
}

// TryingAsync runs block in its own goroutine; the future resolves with
// the classified outcome.
func TryingAsync[T any](ctx context.Context, block func(ctx context.Context) (T, error)) *future.Future[sum.Outcome[T]] {
	f := future.New[sum.Outcome[T]]()

	go func() {
		f.Complete(Trying(func() (T, error) { return block(ctx) }))
	}()

	return f
}

// TryCatchingAsync is the allow-list form of TryingAsync. A fault the
// list rejects cannot re-raise across the goroutine boundary, so it
// fails the future instead; Get reports it as an error, distinct from a
// failure outcome.
func TryCatchingAsync[T any](ctx context.Context, allowed []Predicate,
	block func(ctx context.Context) (T, error)) *future.Future[sum.Outcome[T]] {

	f := future.New[sum.Outcome[T]]()

	go func() {
		out, rethrow := tryCatch(allowed, func() (T, error) { return block(ctx) })
		if rethrow != nil {
			f.Fail(fault.FromPanic(rethrow))
			return
		}
		f.Complete(out)
	}()

	return f
}

// tryCatch reports a rejected panic value through rethrow instead of
// panicking, so sync and async wrappers can propagate it their own way.
func tryCatch[T any](allowed []Predicate, block func() (T, error)) (out sum.Outcome[T], rethrow any) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if len(allowed) == 0 {
			out = sum.Fail[T](fault.FromPanic(r))
			return
		}
		err := fault.FromPanic(r)
		for _, match := range allowed {
			if match(err) {
				out = sum.Fail[T](err)
				return
			}
		}
		rethrow = r
	}()

	v, err := block()
	if err != nil {
		return sum.Fail[T](err), nil
	}
	return sum.Success(v), nil
}
