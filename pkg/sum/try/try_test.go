package try

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/sum3/pkg/sum/fault"
)

type oneError struct{}

func (oneError) Error() string { return "one" }

type twoError struct{}

func (twoError) Error() string { return "two" }

type threeError struct{}

func (threeError) Error() string { return "three" }

func TestTrying_NormalReturn(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	o := Trying(func() (int, error) { return 5, nil })
	req.True(o.IsOk())
	req.Equal(5, o.Value())
}

func TestTrying_ReturnedError(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	boom := errors.New("boom")
	o := Trying(func() (int, error) { return 0, boom })
	req.True(o.IsErr())
	req.Equal(boom, o.Err())
}

func TestTrying_PanicCaught(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	o := Trying(func() (int, error) { panic(oneError{}) })
	req.True(o.IsErr())
	req.True(errors.As(o.Err(), &oneError{}))
}

func TestTrying_NonErrorPanicWrapped(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	o := Trying(func() (int, error) { panic("raw") })
	req.True(o.IsErr())

	var f *fault.Fault
	req.True(errors.As(o.Err(), &f))
	req.Equal("panic", f.Name())
	req.Equal("raw", f.Message())
}

func TestTryCatching_AllowListMatch(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	allowed := []Predicate{OfType[oneError](), OfType[twoError]()}
	o := TryCatching(allowed, func() (int, error) { panic(twoError{}) })
	req.True(o.IsErr())
	req.True(errors.As(o.Err(), &twoError{}))
}

func TestTryCatching_Rethrow(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	allowed := []Predicate{OfType[oneError]()}
	req.PanicsWithValue(threeError{}, func() {
		TryCatching(allowed, func() (int, error) { panic(threeError{}) })
	})
}

func TestTryCatching_EmptyListCatchesAll(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	o := TryCatching(nil, func() (int, error) { panic(threeError{}) })
	req.True(o.IsErr())
	req.True(errors.As(o.Err(), &threeError{}))
}

func TestTryCatching_ReturnedErrorBypassesList(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	boom := errors.New("boom")
	o := TryCatching([]Predicate{OfType[oneError]()}, func() (int, error) { return 0, boom })
	req.True(o.IsErr())
	req.Equal(boom, o.Err())
}

func TestIsPredicate(t *testing.T) {
	t.Parallel()
	req := require.New(t)

	sentinel := errors.New("sentinel")
	o := TryCatching([]Predicate{Is(sentinel)}, func() (int, error) { panic(sentinel) })
	req.True(o.IsErr())
	req.ErrorIs(o.Err(), sentinel)
}

func TestTryingAsync(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	f := TryingAsync(ctx, func(ctx context.Context) (int, error) { return 7, nil })
	o, err := f.Get(ctx)
	req.NoError(err)
	req.True(o.IsOk())
	req.Equal(7, o.Value())

	f = TryingAsync(ctx, func(ctx context.Context) (int, error) { panic(oneError{}) })
	o, err = f.Get(ctx)
	req.NoError(err)
	req.True(o.IsErr())
	req.True(errors.As(o.Err(), &oneError{}))
}

func TestTryCatchingAsync_RejectedFaultFailsFuture(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	f := TryCatchingAsync(ctx, []Predicate{OfType[oneError]()},
		func(ctx context.Context) (int, error) { panic(threeError{}) })

	_, err := f.Get(ctx)
	req.Error(err)
	req.True(errors.As(err, &threeError{}))
}

func TestTryCatchingAsync_Match(t *testing.T) {
	t.Parallel()
	req := require.New(t)
	ctx := context.Background()

	f := TryCatchingAsync(ctx, []Predicate{OfType[twoError]()},
		func(ctx context.Context) (int, error) { panic(twoError{}) })

	o, err := f.Get(ctx)
	req.NoError(err)
	req.True(o.IsErr())
	req.True(errors.As(o.Err(), &twoError{}))
}
