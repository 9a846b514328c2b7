package sum

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/sum3/pkg/sum/fault"
)

// Absent is the payload of an Option's empty side. It carries no
// information.
type Absent struct{}

// Option is the present-or-absent specialization of Either: the left
// slot holds a present value, the right slot is the fixed absent marker.
type Option[T any] struct {
	u Either[T, Absent]
}

func Some[T any](v T) Option[T] {
	return Option[T]{u: Left[T, Absent](v)}
}

func None[T any]() Option[T] {
	return Option[T]{u: Right[T, Absent](Absent{})}
}

// From classifies a raw value: nil pointers, interfaces, funcs, maps,
// slices and channels become None, everything else Some. Zero values
// like 0 and "" are present, not absent.
func From[T any](v T) Option[T] {
	if IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr builds an Option from a pointer, dereferencing when non-nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.u.IsLeft()
}

func (o Option[T]) IsNone() bool {
	return o.u.IsRight()
}

// Either returns the underlying union.
func (o Option[T]) Either() Either[T, Absent] {
	return o.u
}

// Value returns the payload and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.u.left, o.u.IsLeft()
}

func (o Option[T]) Id() uuid.UUID {
	return o.u.id
}

func (o Option[T]) CreatedAt() time.Time {
	return o.u.createdAt
}

func (o Option[T]) ValueOr(fallback T) T {
	return o.u.LeftOr(fallback)
}

func (o Option[T]) ValueOrElse(fallback func() T) T {
	return o.u.LeftOrElse(func(Absent) T { return fallback() })
}

// MustValue returns the payload or panics with *fault.WrongSideError.
// Escape hatch for tests.
func (o Option[T]) MustValue() T {
	return o.u.MustLeft()
}

func (o Option[T]) TapSome(fn func(T)) Option[T] {
	o.u.TapLeft(fn)
	return o
}

func (o Option[T]) TapNone(fn func()) Option[T] {
	o.u.TapRight(func(Absent) { fn() })
	return o
}

// OkOr converts to an Outcome: a present value becomes a success, an
// absent one a failure carrying err.
func (o Option[T]) OkOr(err error) Outcome[T] {
	if o.IsSome() {
		return Success(o.u.left)
	}
	return Fail[T](err)
}

// OkOrElse is OkOr with a lazily produced failure.
func (o Option[T]) OkOrElse(fn func() error) Outcome[T] {
	if o.IsSome() {
		return Success(o.u.left)
	}
	return Fail[T](fn())
}

// OkOrError is OkOr with a generic absent_value fault built from msg.
func (o Option[T]) OkOrError(msg string) Outcome[T] {
	return o.OkOrElse(func() error { return fault.New("absent_value", msg) })
}

func (o Option[T]) OkOrErrorf(format string, args ...any) Outcome[T] {
	return o.OkOrElse(func() error { return fault.Newf("absent_value", format, args...) })
}

func (o Option[T]) String() string {
	if o.IsSome() {
		return fmt.Sprintf("Some(%v)", o.u.left)
	}
	return "None"
}

// MapOption transforms the present value; an absent one passes through.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.IsSome() {
		return Some(fn(o.u.left))
	}
	return Option[U]{u: carryRight[T, Absent, U](o.u)}
}

// AndThenOption chains an optional step, short-circuiting on absent: fn
// is never invoked when the receiver is None.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.IsSome() {
		return fn(o.u.left)
	}
	return Option[U]{u: carryRight[T, Absent, U](o.u)}
}

// MatchOption collapses the option; exactly one branch runs.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	return Fold(o.u, onSome, func(Absent) U { return onNone() })
}
