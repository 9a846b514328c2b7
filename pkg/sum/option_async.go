package sum

import (
	"context"

	"github.com/ib-77/sum3/pkg/sum/future"
)

// ValueOrFutureOption returns the present value, or awaits the pending
// fallback when absent.
func ValueOrFutureOption[T any](ctx context.Context, o Option[T], fallback *future.Future[T]) (T, error) {
	return LeftOrFuture(ctx, o.u, fallback)
}

func ValueOrElseFutureOption[T any](ctx context.Context, o Option[T],
	fallback func(ctx context.Context) *future.Future[T]) (T, error) {

	return LeftOrElseFuture(ctx, o.u, func(ctx context.Context, _ Absent) *future.Future[T] {
		return fallback(ctx)
	})
}

// MapOptionAsync transforms the present value off the calling goroutine.
func MapOptionAsync[T, U any](ctx context.Context, o Option[T],
	fn func(ctx context.Context, v T) U) *future.Future[Option[U]] {

	if o.IsNone() {
		return future.Resolved(Option[U]{u: carryRight[T, Absent, U](o.u)})
	}
	return future.FromFunc(func() (Option[U], error) {
		return Some(fn(ctx, o.u.left)), nil
	})
}

// AndThenOptionAsync chains an optional step off the calling goroutine;
// fn is never invoked when the receiver is None.
func AndThenOptionAsync[T, U any](ctx context.Context, o Option[T],
	fn func(ctx context.Context, v T) Option[U]) *future.Future[Option[U]] {

	if o.IsNone() {
		return future.Resolved(Option[U]{u: carryRight[T, Absent, U](o.u)})
	}
	return future.FromFunc(func() (Option[U], error) {
		return fn(ctx, o.u.left), nil
	})
}

func MatchOptionAsync[T, U any](ctx context.Context, o Option[T],
	onSome func(ctx context.Context, v T) U,
	onNone func(ctx context.Context) U) *future.Future[U] {

	return FoldAsync(ctx, o.u, onSome, func(ctx context.Context, _ Absent) U {
		return onNone(ctx)
	})
}

func TapSomeAsync[T any](ctx context.Context, o Option[T],
	fn func(ctx context.Context, v T)) *future.Future[Option[T]] {

	if o.IsNone() {
		return future.Resolved(o)
	}
	return future.FromFunc(func() (Option[T], error) {
		fn(ctx, o.u.left)
		return o, nil
	})
}

// TapNoneAsync runs fn off the calling goroutine when absent; the
// returned future completes with the original option once fn returned.
func TapNoneAsync[T any](ctx context.Context, o Option[T],
	fn func(ctx context.Context)) *future.Future[Option[T]] {

	if o.IsSome() {
		return future.Resolved(o)
	}
	return future.FromFunc(func() (Option[T], error) {
		fn(ctx)
		return o, nil
	})
}

// OkOrFuture converts to an Outcome, awaiting the pending failure only
// when the option is absent.
func OkOrFuture[T any](ctx context.Context, o Option[T], fallback *future.Future[error]) (Outcome[T], error) {
	if o.IsSome() {
		return Success(o.u.left), nil
	}
	err, gerr := fallback.Get(ctx)
	if gerr != nil {
		return Outcome[T]{}, gerr
	}
	return Fail[T](err), nil
}

// OkOrErrorAsync converts to an Outcome off the calling goroutine,
// building the absent_value fault from the produced message.
func OkOrErrorAsync[T any](ctx context.Context, o Option[T],
	msg func(ctx context.Context) string) *future.Future[Outcome[T]] {

	if o.IsSome() {
		return future.Resolved(Success(o.u.left))
	}
	return future.FromFunc(func() (Outcome[T], error) {
		return o.OkOrError(msg(ctx)), nil
	})
}
