package sum

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/sum3/pkg/sum/fault"
)

// Outcome is the success-or-failure specialization of Either: the left
// slot holds a successful value, the right slot holds the failure. The
// failure is always returned as data, never raised.
type Outcome[V any] struct {
	u Either[V, error]
}

func Success[V any](v V) Outcome[V] {
	return Outcome[V]{u: Left[V, error](v)}
}

// Fail builds a failure outcome. A nil err would break the invariant
// that a failure always carries a fault, so it is substituted with a
// missing_failure fault.
func Fail[V any](err error) Outcome[V] {
	if IsNil(err) {
		err = fault.New("missing_failure", "failure constructed without an error value")
	}
	return Outcome[V]{u: Right[V, error](err)}
}

// FailFrom carries the failure of one outcome into another value type,
// keeping the original id and creation time.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{u: carryRight[In, error, Out](from.u)}
}

func (o Outcome[V]) IsOk() bool {
	return o.u.IsLeft()
}

func (o Outcome[V]) IsErr() bool {
	return o.u.IsRight()
}

// Either returns the underlying union.
func (o Outcome[V]) Either() Either[V, error] {
	return o.u
}

// Value returns the successful value (zero value when failed).
func (o Outcome[V]) Value() V {
	return o.u.left
}

// Err returns the failure, nil on success.
func (o Outcome[V]) Err() error {
	if o.u.IsRight() {
		return o.u.right
	}
	return nil
}

func (o Outcome[V]) Id() uuid.UUID {
	return o.u.id
}

func (o Outcome[V]) CreatedAt() time.Time {
	return o.u.createdAt
}

func (o Outcome[V]) ValueOr(fallback V) V {
	return o.u.LeftOr(fallback)
}

func (o Outcome[V]) ValueOrElse(fallback func(error) V) V {
	return o.u.LeftOrElse(fallback)
}

// MustValue returns the value or panics with *fault.WrongSideError.
// Escape hatch for tests.
func (o Outcome[V]) MustValue() V {
	return o.u.MustLeft()
}

func (o Outcome[V]) MustErr() error {
	return o.u.MustRight()
}

// TapOk runs fn on success for its side effect and returns the receiver.
func (o Outcome[V]) TapOk(fn func(V)) Outcome[V] {
	o.u.TapLeft(fn)
	return o
}

func (o Outcome[V]) TapErr(fn func(error)) Outcome[V] {
	o.u.TapRight(fn)
	return o
}

// MapErr transforms the failure; a success passes its payload through
// into a new wrapper.
func (o Outcome[V]) MapErr(fn func(error) error) Outcome[V] {
	if o.IsErr() {
		return Fail[V](fn(o.u.right))
	}
	return Outcome[V]{u: carryLeft[V, error, error](o.u)}
}

// SomeOrNone converts to an Option, discarding the failure: a success
// with a non-nil payload becomes Some, everything else None. A success
// holding a nil payload deliberately collapses to None, matching From's
// classification; use AsNullable when the failure must survive.
func (o Outcome[V]) SomeOrNone() Option[V] {
	if o.IsOk() {
		return From(o.u.left)
	}
	return None[V]()
}

func (o Outcome[V]) String() string {
	if o.IsOk() {
		return fmt.Sprintf("Ok(%v)", o.u.left)
	}
	return fmt.Sprintf("Err(%v)", o.u.right)
}

// Map transforms the successful value; a failure passes through.
func Map[V, U any](o Outcome[V], fn func(V) U) Outcome[U] {
	if o.IsOk() {
		return Success(fn(o.u.left))
	}
	return FailFrom[V, U](o)
}

// AndThen chains a fallible step: on success fn's outcome is returned
// directly (flattened); on failure fn is never invoked and the failure
// passes through. This is the short-circuit at the heart of fallible
// chains.
func AndThen[V, U any](o Outcome[V], fn func(V) Outcome[U]) Outcome[U] {
	if o.IsOk() {
		return fn(o.u.left)
	}
	return FailFrom[V, U](o)
}

// Match collapses the outcome; exactly one branch runs.
func Match[V, U any](o Outcome[V], onOk func(V) U, onErr func(error) U) U {
	return Fold(o.u, onOk, onErr)
}
