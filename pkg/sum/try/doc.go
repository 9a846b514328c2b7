// Package try provides guarded execution: run a block and turn whatever
// it raises into a failure Outcome instead of letting it escape.
//
// Trying catches everything. TryCatching takes an allow-list of
// predicates and re-raises any fault the list rejects, so unexpected
// panics still surface at the caller. Both have ...Async forms that run
// the block in its own goroutine and resolve a future.
package try
