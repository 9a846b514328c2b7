// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of sum.Outcome[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick between two chains
// - Finally: reduce to a concrete value via handlers
//
// Every step short-circuits on failure. For imperative-style sequencing
// with early exit see the do package.
package chain
