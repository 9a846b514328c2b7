// Package fault defines the failure taxonomy carried by Outcome values:
// a base fault with a classification name and a message, and the
// wrong-side access fault raised by the unions' must-accessors.
//
// Faults are ordinary immutable error values. They carry no stack, do no
// logging and stay fully compatible with errors.Is and errors.As.
package fault
