package sum

// AsNullable rewraps the successful payload in an Option without
// discarding the failure: the lossless counterpart of SomeOrNone.
func AsNullable[V any](o Outcome[V]) Outcome[Option[V]] {
	if o.IsOk() {
		return Success(From(o.u.left))
	}
	return FailFrom[V, Option[V]](o)
}

// TransposeOutcome turns an Outcome of Option inside out:
//
//	Ok(Some(v)) -> Some(Ok(v))
//	Ok(None)    -> None
//	Err(e)      -> Some(Err(e))
//
// A failure is preserved by wrapping, never silently dropped.
func TransposeOutcome[V any](o Outcome[Option[V]]) Option[Outcome[V]] {
	if o.IsErr() {
		return Some(Fail[V](o.u.right))
	}
	inner := o.u.left
	if inner.IsNone() {
		return None[Outcome[V]]()
	}
	return Some(Success(inner.u.left))
}

// TransposeOption turns an Option of Outcome inside out:
//
//	Some(Ok(v))  -> Ok(Some(v))
//	Some(Err(e)) -> Err(e)
//	None         -> Ok(None)
func TransposeOption[V any](o Option[Outcome[V]]) Outcome[Option[V]] {
	if o.IsNone() {
		return Success(None[V]())
	}
	inner := o.u.left
	if inner.IsErr() {
		return Fail[Option[V]](inner.u.right)
	}
	return Success(Some(inner.u.left))
}

// IsOutcome reports whether v is an Outcome of any value type. Tag
// check, usable at a trust boundary where an incoming value's shape is
// uncertain.
func IsOutcome(v any) bool {
	_, ok := v.(outcomeMarker)
	return ok
}

// IsOption reports whether v is an Option of any value type.
func IsOption(v any) bool {
	_, ok := v.(optionMarker)
	return ok
}
