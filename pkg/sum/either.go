package sum

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/sum3/pkg/sum/fault"
)

type side uint8

const (
	leftSide side = iota
	rightSide
)

func (s side) String() string {
	if s == leftSide {
		return "left"
	}
	return "right"
}

// Either is a binary disjoint union: exactly one payload is held, tagged
// left or right, and the tag is fixed at construction. Values are
// immutable; every transforming operation builds a new instance. Each
// instance is stamped with an id and UTC creation time.
type Either[L, R any] struct {
	id        uuid.UUID
	createdAt time.Time
	left      L
	right     R
	side      side
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		left:      v,
		side:      leftSide,
	}
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		right:     v,
		side:      rightSide,
	}
}

// carryLeft rewraps a left payload under a new right type, keeping the
// original id and creation time.
func carryLeft[L, R, U any](e Either[L, R]) Either[L, U] {
	return Either[L, U]{
		id:        e.id,
		createdAt: e.createdAt,
		left:      e.left,
		side:      leftSide,
	}
}

// carryRight rewraps a right payload under a new left type, keeping the
// original id and creation time.
func carryRight[L, R, U any](e Either[L, R]) Either[U, R] {
	return Either[U, R]{
		id:        e.id,
		createdAt: e.createdAt,
		right:     e.right,
		side:      rightSide,
	}
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == leftSide
}

func (e Either[L, R]) IsRight() bool {
	return e.side == rightSide
}

func (e Either[L, R]) Id() uuid.UUID {
	return e.id
}

// CreatedAt time creation (UTC)
func (e Either[L, R]) CreatedAt() time.Time {
	return e.createdAt
}

// LeftOr returns the left payload, or fallback when right-tagged.
func (e Either[L, R]) LeftOr(fallback L) L {
	if e.side == leftSide {
		return e.left
	}
	return fallback
}

// LeftOrElse returns the left payload, or the fallback computed from the
// right payload. The fallback runs only when taken.
func (e Either[L, R]) LeftOrElse(fallback func(R) L) L {
	if e.side == leftSide {
		return e.left
	}
	return fallback(e.right)
}

func (e Either[L, R]) RightOr(fallback R) R {
	if e.side == rightSide {
		return e.right
	}
	return fallback
}

func (e Either[L, R]) RightOrElse(fallback func(L) R) R {
	if e.side == rightSide {
		return e.right
	}
	return fallback(e.left)
}

// TapLeft runs fn for its side effect when left-tagged and returns the
// receiver unchanged, so taps can be inserted into a chain freely.
func (e Either[L, R]) TapLeft(fn func(L)) Either[L, R] {
	if e.side == leftSide {
		fn(e.left)
	}
	return e
}

func (e Either[L, R]) TapRight(fn func(R)) Either[L, R] {
	if e.side == rightSide {
		fn(e.right)
	}
	return e
}

// MustLeft returns the left payload or panics with *fault.WrongSideError.
// Escape hatch for tests; production code should use LeftOr or Fold.
func (e Either[L, R]) MustLeft() L {
	if e.side != leftSide {
		panic(fault.WrongSide(leftSide.String(), e.side.String()))
	}
	return e.left
}

// MustRight returns the right payload or panics with *fault.WrongSideError.
func (e Either[L, R]) MustRight() R {
	if e.side != rightSide {
		panic(fault.WrongSide(rightSide.String(), e.side.String()))
	}
	return e.right
}

func (e Either[L, R]) String() string {
	if e.side == leftSide {
		return fmt.Sprintf("Left(%v)", e.left)
	}
	return fmt.Sprintf("Right(%v)", e.right)
}
