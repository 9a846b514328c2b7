package sum

import (
	"time"

	"github.com/google/uuid"
)

// Stamped is implemented by every union value.
type Stamped interface {
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Union is the tag-level contract of the disjoint union: the checks are
// mutually exclusive and exhaustive.
type Union interface {
	Stamped
	IsLeft() bool
	IsRight() bool
}

// Marker interfaces backing the IsOutcome/IsOption runtime guards: every
// instantiation of a variant satisfies its marker, so the guard is a
// kind check rather than reflection.

type outcomeMarker interface {
	isOutcome()
}

type optionMarker interface {
	isOption()
}

func (Outcome[V]) isOutcome() {}

func (Option[T]) isOption() {}
