package chain

import (
	"github.com/ib-77/sum3/pkg/sum"
	"github.com/ib-77/sum3/pkg/sum/try"
)

// Chain wraps a sum.Outcome to enable fluent synchronous chaining.
type Chain[T any] struct {
	res sum.Outcome[T]
}

// Start creates a new chain from a sum.Outcome
func Start[T any](r sum.Outcome[T]) Chain[T] {
	return Chain[T]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](v T) Chain[T] {
	return Start(sum.Success(v))
}

// Result returns the underlying sum.Outcome
func (c Chain[T]) Result() sum.Outcome[T] {
	return c.res
}

// Then composes functions that already return sum.Outcome[T]
func (c Chain[T]) Then(onOk func(t T) sum.Outcome[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: onOk(c.res.Value())}
}

// ThenTry composes functions that return (T, error); a panic inside the
// step is captured as a failure too.
func (c Chain[T]) ThenTry(step func(t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	v := c.res.Value()
	return Chain[T]{res: try.Trying(func() (T, error) {
		return step(v)
	})}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onOk func(t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{res: sum.Success(onOk(c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the
// result
func (c Chain[T]) Ensure(onOk func(T), onErr func(error)) Chain[T] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.Err())
		}
		return c
	}
	if onOk != nil {
		onOk(c.res.Value())
	}
	return c
}

// Or keeps the first success between the receiver and alternative, else
// the receiver's failure.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And keeps the first failure between the receiver and required, else
// required's success.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value
func Finally[T, U any](c Chain[T], onOk func(t T) U, onErr func(err error) U) U {
	return sum.Match(c.res, onOk, onErr)
}
