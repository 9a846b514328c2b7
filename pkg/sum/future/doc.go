// Package future provides the pending-value primitive backing the
// ...Async combinators: a complete-once, multi-reader container with a
// context-aware Get.
package future
