// Package do provides sequencing blocks: imperative code over Outcome
// values that short-circuits on the first failure without manual
// branching.
//
//	out := do.Do(func(b do.B) int {
//		a := do.Bind(b, step1())
//		c := do.Bind(b, step2(a))
//		return c + 1
//	})
//
// Bind unwraps a success or unwinds the block with the failure; the
// wrapper converts that back into a failure Outcome. Do captures any
// panic the block raises; DoStrict re-raises everything that is not the
// internal propagation carrier. The ...Async forms run the block in its
// own goroutine, and the future-taking binds accept pending raw values
// and pending outcomes directly.
package do
