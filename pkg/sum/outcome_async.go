package sum

import (
	"context"

	"github.com/ib-77/sum3/pkg/sum/future"
)

// ValueOrFuture returns the successful value, or awaits the pending
// fallback when failed.
func ValueOrFuture[V any](ctx context.Context, o Outcome[V], fallback *future.Future[V]) (V, error) {
	return LeftOrFuture(ctx, o.u, fallback)
}

func ValueOrElseFuture[V any](ctx context.Context, o Outcome[V],
	fallback func(ctx context.Context, err error) *future.Future[V]) (V, error) {

	return LeftOrElseFuture(ctx, o.u, fallback)
}

// MapAsync transforms the successful value off the calling goroutine.
func MapAsync[V, U any](ctx context.Context, o Outcome[V],
	fn func(ctx context.Context, v V) U) *future.Future[Outcome[U]] {

	if o.IsErr() {
		return future.Resolved(FailFrom[V, U](o))
	}
	return future.FromFunc(func() (Outcome[U], error) {
		return Success(fn(ctx, o.u.left)), nil
	})
}

func MapErrAsync[V any](ctx context.Context, o Outcome[V],
	fn func(ctx context.Context, err error) error) *future.Future[Outcome[V]] {

	if o.IsOk() {
		return future.Resolved(o)
	}
	return future.FromFunc(func() (Outcome[V], error) {
		return Fail[V](fn(ctx, o.u.right)), nil
	})
}

// AndThenAsync chains a fallible step off the calling goroutine; on
// failure fn is never invoked.
func AndThenAsync[V, U any](ctx context.Context, o Outcome[V],
	fn func(ctx context.Context, v V) Outcome[U]) *future.Future[Outcome[U]] {

	if o.IsErr() {
		return future.Resolved(FailFrom[V, U](o))
	}
	return future.FromFunc(func() (Outcome[U], error) {
		return fn(ctx, o.u.left), nil
	})
}

func MatchAsync[V, U any](ctx context.Context, o Outcome[V],
	onOk func(ctx context.Context, v V) U,
	onErr func(ctx context.Context, err error) U) *future.Future[U] {

	return FoldAsync(ctx, o.u, onOk, onErr)
}

func TapOkAsync[V any](ctx context.Context, o Outcome[V],
	fn func(ctx context.Context, v V)) *future.Future[Outcome[V]] {

	if o.IsErr() {
		return future.Resolved(o)
	}
	return future.FromFunc(func() (Outcome[V], error) {
		fn(ctx, o.u.left)
		return o, nil
	})
}

func TapErrAsync[V any](ctx context.Context, o Outcome[V],
	fn func(ctx context.Context, err error)) *future.Future[Outcome[V]] {

	if o.IsOk() {
		return future.Resolved(o)
	}
	return future.FromFunc(func() (Outcome[V], error) {
		fn(ctx, o.u.right)
		return o, nil
	})
}
