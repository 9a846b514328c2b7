// Package pipe provides curried factories for the core combinators: each
// function takes the operation's argument and returns the stage function
// Outcome -> Outcome (or Option -> Option), for point-free composition.
package pipe
