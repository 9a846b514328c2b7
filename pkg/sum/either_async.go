package sum

import (
	"context"

	"github.com/ib-77/sum3/pkg/sum/future"
)

// LeftOrFuture returns the left payload, or awaits the pending fallback
// when right-tagged. The fallback is only awaited when taken.
func LeftOrFuture[L, R any](ctx context.Context, e Either[L, R], fallback *future.Future[L]) (L, error) {
	if e.IsLeft() {
		return e.left, nil
	}
	return fallback.Get(ctx)
}

func RightOrFuture[L, R any](ctx context.Context, e Either[L, R], fallback *future.Future[R]) (R, error) {
	if e.IsRight() {
		return e.right, nil
	}
	return fallback.Get(ctx)
}

// LeftOrElseFuture returns the left payload, or awaits the pending value
// produced from the right payload.
func LeftOrElseFuture[L, R any](ctx context.Context, e Either[L, R],
	fallback func(ctx context.Context, r R) *future.Future[L]) (L, error) {

	if e.IsLeft() {
		return e.left, nil
	}
	return fallback(ctx, e.right).Get(ctx)
}

func RightOrElseFuture[L, R any](ctx context.Context, e Either[L, R],
	fallback func(ctx context.Context, l L) *future.Future[R]) (R, error) {

	if e.IsRight() {
		return e.right, nil
	}
	return fallback(ctx, e.left).Get(ctx)
}

// MapLeftAsync applies fn off the calling goroutine and returns a future
// of the transformed union. A right-tagged value resolves immediately.
func MapLeftAsync[L, R, U any](ctx context.Context, e Either[L, R],
	fn func(ctx context.Context, l L) U) *future.Future[Either[U, R]] {

	if e.IsRight() {
		return future.Resolved(carryRight[L, R, U](e))
	}
	return future.FromFunc(func() (Either[U, R], error) {
		return Left[U, R](fn(ctx, e.left)), nil
	})
}

func MapRightAsync[L, R, U any](ctx context.Context, e Either[L, R],
	fn func(ctx context.Context, r R) U) *future.Future[Either[L, U]] {

	if e.IsLeft() {
		return future.Resolved(carryLeft[L, R, U](e))
	}
	return future.FromFunc(func() (Either[L, U], error) {
		return Right[L, U](fn(ctx, e.right)), nil
	})
}

// TapLeftAsync runs fn off the calling goroutine when left-tagged; the
// returned future completes with the original union once fn returned.
func TapLeftAsync[L, R any](ctx context.Context, e Either[L, R],
	fn func(ctx context.Context, l L)) *future.Future[Either[L, R]] {

	if e.IsRight() {
		return future.Resolved(e)
	}
	return future.FromFunc(func() (Either[L, R], error) {
		fn(ctx, e.left)
		return e, nil
	})
}

func TapRightAsync[L, R any](ctx context.Context, e Either[L, R],
	fn func(ctx context.Context, r R)) *future.Future[Either[L, R]] {

	if e.IsLeft() {
		return future.Resolved(e)
	}
	return future.FromFunc(func() (Either[L, R], error) {
		fn(ctx, e.right)
		return e, nil
	})
}

// FoldAsync collapses the union off the calling goroutine; exactly one
// branch runs.
func FoldAsync[L, R, U any](ctx context.Context, e Either[L, R],
	onLeft func(ctx context.Context, l L) U,
	onRight func(ctx context.Context, r R) U) *future.Future[U] {

	return future.FromFunc(func() (U, error) {
		if e.IsLeft() {
			return onLeft(ctx, e.left), nil
		}
		return onRight(ctx, e.right), nil
	})
}
