package do

import (
	"context"
	"errors"

	"github.com/ib-77/sum3/pkg/sum"
	"github.com/ib-77/sum3/pkg/sum/future"
	"github.com/ib-77/sum3/pkg/sum/try"
)

// B is the binding token a block receives. It scopes the Bind functions
// to one block invocation and carries the context the future-resolving
// binds use. Only Do and its variants can construct one.
type B struct {
	ctx context.Context
}

// Context returns the context the block was started with.
func (b B) Context() context.Context {
	return b.ctx
}

// abort is the internal propagation carrier: it unwinds the block on the
// first bound failure and is unwrapped back to that failure before the
// block returns. It implements error only so it can traverse the try
// layer; it must never be observable outside this package.
type abort struct {
	err error
}

func (a *abort) Error() string {
	return "do: aborted sequencing block: " + a.err.Error()
}

// Bind returns the successful value of o, or unwinds the enclosing block
// carrying o's failure. Each bind completes before the next statement of
// the block runs.
func Bind[V any](_ B, o sum.Outcome[V]) V {
	if o.IsErr() {
		panic(&abort{err: o.Err()})
	}
	return o.Value()
}

// BindFuture resolves a pending raw value first, then binds it. A failed
// or canceled future unwinds the block with its error.
func BindFuture[V any](b B, f *future.Future[V]) V {
	v, err := f.Get(b.ctx)
	if err != nil {
		panic(&abort{err: err})
	}
	return v
}

// BindFutureOutcome resolves a pending outcome, then binds it.
func BindFutureOutcome[V any](b B, f *future.Future[sum.Outcome[V]]) V {
	o, err := f.Get(b.ctx)
	if err != nil {
		panic(&abort{err: err})
	}
	return Bind(b, o)
}

// Do runs block with a fresh binding token. The first bound failure
// short-circuits the block and becomes the returned failure; a normal
// return becomes a success. Catch-all form: any other panic raised
// inside the block is captured as a failure too.
func Do[T any](block func(b B) T) sum.Outcome[T] {
	return DoCtx(context.Background(), block)
}

// DoCtx is Do with the context future-resolving binds should use.
func DoCtx[T any](ctx context.Context, block func(b B) T) sum.Outcome[T] {
	return unwrap(try.Trying(func() (T, error) {
		return block(B{ctx: ctx}), nil
	}))
}

// DoStrict is Do with the catch-all off: only the internal propagation
// carrier is caught, any other panic re-raises to the caller.
func DoStrict[T any](block func(b B) T) sum.Outcome[T] {
	return DoStrictCtx(context.Background(), block)
}

func DoStrictCtx[T any](ctx context.Context, block func(b B) T) sum.Outcome[T] {
	return unwrap(try.TryCatching(aborts, func() (T, error) {
		return block(B{ctx: ctx}), nil
	}))
}

// DoAsync runs the block in its own goroutine; the future resolves with
// the block's outcome. Binds inside the block stay strictly sequential.
func DoAsync[T any](ctx context.Context, block func(b B) T) *future.Future[sum.Outcome[T]] {
	return unwrapAsync(ctx, try.TryingAsync(ctx, func(ctx context.Context) (T, error) {
		return block(B{ctx: ctx}), nil
	}))
}

// DoStrictAsync is DoAsync with the catch-all off. A foreign panic
// cannot re-raise across the goroutine boundary, so it fails the future;
// Get reports it as an error, distinct from a failure outcome.
func DoStrictAsync[T any](ctx context.Context, block func(b B) T) *future.Future[sum.Outcome[T]] {
	return unwrapAsync(ctx, try.TryCatchingAsync(ctx, aborts, func(ctx context.Context) (T, error) {
		return block(B{ctx: ctx}), nil
	}))
}

var aborts = []try.Predicate{try.OfType[*abort]()}

// unwrap replaces a captured propagation carrier with the failure it
// carries, so the carrier never crosses the package boundary.
func unwrap[T any](out sum.Outcome[T]) sum.Outcome[T] {
	if out.IsOk() {
		return out
	}
	var a *abort
	if errors.As(out.Err(), &a) {
		return sum.Fail[T](a.err)
	}
	return out
}

func unwrapAsync[T any](ctx context.Context, inner *future.Future[sum.Outcome[T]]) *future.Future[sum.Outcome[T]] {
	f := future.New[sum.Outcome[T]]()

	go func() {
		out, err := inner.Get(ctx)
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(unwrap(out))
	}()

	return f
}
