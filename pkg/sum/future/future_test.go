package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func TestFirstCompletionWins(t *testing.T) {
	req := require.New(t)

	f := New[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(1)
		f.Complete(2)
		f.Fail(errTest)
	}()

	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(1, v)
}

func TestFromFunc(t *testing.T) {
	req := require.New(t)

	f := FromFunc(func() (int, error) {
		return 42, nil
	})
	v, err := f.Get(context.Background())
	req.NoError(err)
	req.Equal(42, v)

	f = FromFunc(func() (int, error) {
		return 0, errTest
	})
	_, err = f.Get(context.Background())
	req.ErrorIs(err, errTest)
}

func TestResolvedFailed(t *testing.T) {
	req := require.New(t)

	v, err := Resolved("x").Get(context.Background())
	req.NoError(err)
	req.Equal("x", v)

	_, err = Failed[string](errTest).Get(context.Background())
	req.ErrorIs(err, errTest)
}

func TestCancel(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	f.Cancel()

	_, err := f.Get(context.Background())
	req.ErrorIs(err, ErrCanceled)
}

func TestGet_ContextDone(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Get(ctx)
	req.ErrorIs(err, context.Canceled)
}

func TestGet_ManyReaders(t *testing.T) {
	req := require.New(t)

	f := New[int]()
	done := make(chan int, 10)

	for i := 0; i < 10; i++ {
		go func() {
			v, _ := f.Get(context.Background())
			done <- v
		}()
	}

	f.Complete(7)
	for i := 0; i < 10; i++ {
		req.Equal(7, <-done)
	}
}

func TestDone(t *testing.T) {
	f := New[int]()
	select {
	case <-f.Done():
		t.Fatal("future should not be done yet")
	default:
	}

	f.Complete(1)
	select {
	case <-f.Done():
	default:
		t.Fatal("future should be done after completion")
	}
}
