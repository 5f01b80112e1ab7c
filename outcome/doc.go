// Package outcome provides a success/failure sum type for expected failure
// states, and the algebra to compose it.
//
// An Outcome carries zero validation messages (success) or one or more
// (failure); Of[T] additionally carries a value, present only on success.
// Expected failures — "username too short" — travel as msgkey Messages
// inside a failing outcome and are composed with Map, Bind, Match, Ensure
// and friends. Programmer errors stay panics: the operators never recover a
// panic raised by a caller-supplied function, with Try/TryAsync as the one
// sanctioned panic-to-outcome boundary.
//
// Aggregation is fail-slow by default: MergeAll and TraverseAll evaluate
// every input and accumulate every failure. OnSuccessSeq is the deliberate
// fail-fast counterpart, stopping at the first failing step.
//
// Asynchronous composition wraps a pending computation as an Async[T],
// a context-taking function producing an Of[T]. The package never spawns
// goroutines of its own except where documented (TraversePartialAsync, Go);
// it only composes computations the caller supplies.
package outcome
