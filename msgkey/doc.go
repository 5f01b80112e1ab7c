// Package msgkey provides typed, parameterized message keys for validation
// failures.
//
// A Definition names a message key once, process-wide, together with the
// ordered, typed parameters the key expects. A Message is one concrete
// failure: a Definition plus arguments that were validated against the
// Definition's descriptors and formatted to strings at construction time.
//
// Argument mistakes (wrong count, wrong type at a position) are programmer
// errors, not validation failures: constructors return ArgumentMismatchError
// or InvalidArgumentError, and the Must* variants panic with the same typed
// value. Expected, user-facing failure states belong in the outcome package
// instead.
package msgkey
