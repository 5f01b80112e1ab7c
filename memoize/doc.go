// Package memoize caches the results of pure functions by their arguments.
//
// Memoizing is not just a performance lever; wrapping a function here is a
// claim that it is referentially transparent. Do not wrap functions that
// depend on time, I/O, or mutable state.
//
// The surface comes in layers:
//
//   - Once, Memoize1/2/3: plain memoized callables for common arities.
//     Multi-argument functions are keyed by a tuple with structural
//     equality; KeyFor folds fmt.Stringer arguments into a 64-bit digest
//     when the argument types themselves are not comparable.
//   - MemoizedFunction: an inspectable keyed cache with atomic hit/miss
//     statistics and explicit cache management.
//   - ExpiringMemoizedFunction: adds a sliding expiration window and an
//     LRU-by-access-time size bound, with expired entries swept in batches
//     at most once per cleanup interval.
//   - Create/CreateConfigurable: factory entry points that pick the backing
//     implementation from the options given. CreateWithStore swaps the
//     backing map for any Store, including the ristretto-based one.
//
// Every wrapper owns an independent cache whose lifetime is that of the
// returned callable; there is no package-level state.
package memoize
