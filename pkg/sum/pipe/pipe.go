package pipe

import "github.com/ib-77/sum3/pkg/sum"

// Map returns the stage applying fn to a successful value.
func Map[V, U any](fn func(V) U) func(sum.Outcome[V]) sum.Outcome[U] {
	return func(o sum.Outcome[V]) sum.Outcome[U] {
		return sum.Map(o, fn)
	}
}

// MapErr returns the stage transforming a failure.
func MapErr[V any](fn func(error) error) func(sum.Outcome[V]) sum.Outcome[V] {
	return func(o sum.Outcome[V]) sum.Outcome[V] {
		return o.MapErr(fn)
	}
}

// AndThen returns the stage chaining a fallible step.
func AndThen[V, U any](fn func(V) sum.Outcome[U]) func(sum.Outcome[V]) sum.Outcome[U] {
	return func(o sum.Outcome[V]) sum.Outcome[U] {
		return sum.AndThen(o, fn)
	}
}

// TapOk returns the stage running a side effect on success.
func TapOk[V any](fn func(V)) func(sum.Outcome[V]) sum.Outcome[V] {
	return func(o sum.Outcome[V]) sum.Outcome[V] {
		return o.TapOk(fn)
	}
}

func TapErr[V any](fn func(error)) func(sum.Outcome[V]) sum.Outcome[V] {
	return func(o sum.Outcome[V]) sum.Outcome[V] {
		return o.TapErr(fn)
	}
}

// ValueOr returns the stage collapsing to the value or a fallback.
func ValueOr[V any](fallback V) func(sum.Outcome[V]) V {
	return func(o sum.Outcome[V]) V {
		return o.ValueOr(fallback)
	}
}

// Match returns the stage collapsing with one handler per side.
func Match[V, U any](onOk func(V) U, onErr func(error) U) func(sum.Outcome[V]) U {
	return func(o sum.Outcome[V]) U {
		return sum.Match(o, onOk, onErr)
	}
}

// AsNullable returns the stage rewrapping a successful payload in an
// Option without discarding the failure.
func AsNullable[V any]() func(sum.Outcome[V]) sum.Outcome[sum.Option[V]] {
	return func(o sum.Outcome[V]) sum.Outcome[sum.Option[V]] {
		return sum.AsNullable(o)
	}
}

// SomeOrNone returns the stage converting an outcome to an option.
func SomeOrNone[V any]() func(sum.Outcome[V]) sum.Option[V] {
	return func(o sum.Outcome[V]) sum.Option[V] {
		return o.SomeOrNone()
	}
}

// MapOption returns the stage applying fn to a present value.
func MapOption[T, U any](fn func(T) U) func(sum.Option[T]) sum.Option[U] {
	return func(o sum.Option[T]) sum.Option[U] {
		return sum.MapOption(o, fn)
	}
}

// AndThenOption returns the stage chaining an optional step.
func AndThenOption[T, U any](fn func(T) sum.Option[U]) func(sum.Option[T]) sum.Option[U] {
	return func(o sum.Option[T]) sum.Option[U] {
		return sum.AndThenOption(o, fn)
	}
}

// MatchOption returns the stage collapsing with one handler per side.
func MatchOption[T, U any](onSome func(T) U, onNone func() U) func(sum.Option[T]) U {
	return func(o sum.Option[T]) U {
		return sum.MatchOption(o, onSome, onNone)
	}
}

func TapSome[T any](fn func(T)) func(sum.Option[T]) sum.Option[T] {
	return func(o sum.Option[T]) sum.Option[T] {
		return o.TapSome(fn)
	}
}

// OkOr returns the stage converting an option to an outcome with err as
// the absent failure.
func OkOr[T any](err error) func(sum.Option[T]) sum.Outcome[T] {
	return func(o sum.Option[T]) sum.Outcome[T] {
		return o.OkOr(err)
	}
}

func OkOrError[T any](msg string) func(sum.Option[T]) sum.Outcome[T] {
	return func(o sum.Option[T]) sum.Outcome[T] {
		return o.OkOrError(msg)
	}
}
