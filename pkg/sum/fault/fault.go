package fault

import "fmt"

// Classified is the minimal contract for failure values carried by an
// Outcome: a human-readable message plus a stable classification name.
// Callers define their own fault kinds by implementing it (embedding
// *Fault is the easy way) and match them back with errors.As.
type Classified interface {
	error
	// Name returns the classification name, lowercase snake_case.
	Name() string
}

// Fault is the base fault value. It is immutable; constructors are the
// only way to build one.
type Fault struct {
	name    string
	message string
}

func New(name, message string) *Fault {
	return &Fault{name: name, message: message}
}

func Newf(name, format string, args ...any) *Fault {
	return &Fault{name: name, message: fmt.Sprintf(format, args...)}
}

func (f *Fault) Error() string {
	return f.name + ": " + f.message
}

func (f *Fault) Name() string {
	return f.name
}

func (f *Fault) Message() string {
	return f.message
}

// WrongSideError signals that a must-accessor was called on the wrong
// side of a union. It marks programmer error, usually in tests; it is
// not a condition application code should branch on.
type WrongSideError struct {
	Requested string
	Actual    string
}

func WrongSide(requested, actual string) *WrongSideError {
	return &WrongSideError{Requested: requested, Actual: actual}
}

func (e *WrongSideError) Error() string {
	return fmt.Sprintf("%s: %s payload requested on a %s-tagged value", e.Name(), e.Requested, e.Actual)
}

func (e *WrongSideError) Name() string {
	return "wrong_side_access"
}

// FromPanic normalizes a recovered panic value into an error. Errors
// pass through unchanged so errors.Is/As still see the original value;
// anything else is wrapped as a generic panic fault.
func FromPanic(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return Newf("panic", "%v", v)
}
