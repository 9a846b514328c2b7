package sum

// MapLeft applies fn to the left payload, producing a new union. A
// right-tagged value passes its payload through into a new wrapper that
// keeps the original id and creation time.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.IsLeft() {
		return Left[U, R](fn(e.left))
	}
	return carryRight[L, R, U](e)
}

// MapRight applies fn to the right payload; a left-tagged value passes
// through.
func MapRight[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.IsRight() {
		return Right[L, U](fn(e.right))
	}
	return carryLeft[L, R, U](e)
}

// Fold collapses the union: exactly one of the two branches runs and its
// return value is the result. There is no default path.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.IsLeft() {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
