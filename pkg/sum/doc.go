// Package sum provides a small family of algebraic container types for
// value-or-alternative outcomes: the binary disjoint union Either[L, R]
// and its two specializations, Outcome[V] (success or failure) and
// Option[T] (present or absent).
//
// All three are immutable value wrappers: the tag is fixed at
// construction and every transform builds a new instance, so values can
// be shared freely across goroutines. Failures travel as data through
// return values; nothing in this package raises except the Must
// accessors, which exist for tests.
//
// Type-preserving operations are methods; operations that change a type
// parameter are package functions (Map, AndThen, Fold, the transposes),
// since Go methods cannot introduce type parameters. The ...Async and
// ...Future forms accept and produce future.Future values and suspend
// only where the synchronous form would consume a payload.
//
// Subpackages: fault (failure taxonomy), future (pending values), try
// (guarded execution), do (sequencing blocks), pipe (curried combinator
// factories), chain (fluent synchronous chaining).
package sum
