package memoize

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Once wraps a parameterless function so it computes at most once, lazily.
// Concurrent first calls never run f more than once and never deadlock each
// other: later callers block until the single computation publishes. A panic
// inside f is not cached — it propagates, and a later call retries f.
func Once[R any](f func() R) func() R {
	var (
		mu     sync.Mutex
		done   bool
		result R
	)
	return func() R {
		mu.Lock()
		defer mu.Unlock()
		if !done {
			result = f()
			done = true
		}
		return result
	}
}

// Memoize1 wraps a single-argument function with an unbounded keyed cache.
// Key equality is the argument's own equality.
func Memoize1[K comparable, R any](f func(K) R) func(K) R {
	m := NewMemoizedFunction(f)
	return m.Invoke
}

type pair[A, B comparable] struct {
	a A
	b B
}

type triple[A, B, C comparable] struct {
	a A
	b B
	c C
}

// Memoize2 wraps a two-argument function, keyed by the structural equality
// of the argument tuple.
func Memoize2[K1, K2 comparable, R any](f func(K1, K2) R) func(K1, K2) R {
	m := NewMemoizedFunction(func(k pair[K1, K2]) R {
		return f(k.a, k.b)
	})
	return func(a K1, b K2) R {
		return m.Invoke(pair[K1, K2]{a: a, b: b})
	}
}

// Memoize3 wraps a three-argument function, keyed by the structural equality
// of the argument tuple.
func Memoize3[K1, K2, K3 comparable, R any](f func(K1, K2, K3) R) func(K1, K2, K3) R {
	m := NewMemoizedFunction(func(k triple[K1, K2, K3]) R {
		return f(k.a, k.b, k.c)
	})
	return func(a K1, b K2, c K3) R {
		return m.Invoke(triple[K1, K2, K3]{a: a, b: b, c: c})
	}
}

// KeyFor folds the canonical string forms of the arguments into one 64-bit
// cache key, for argument types that are not comparable but can speak for
// themselves via fmt.Stringer. Parts are separated so ("ab","c") and
// ("a","bc") hash apart.
func KeyFor(parts ...fmt.Stringer) uint64 {
	h := xxhash.New()
	for _, p := range parts {
		_, _ = h.WriteString(p.String())
		_, _ = h.WriteString("\x1f")
	}
	return h.Sum64()
}

// MemoizeStringer wraps a function over a non-comparable Stringer argument,
// keyed by the KeyFor digest of the argument's string form.
func MemoizeStringer[S fmt.Stringer, R any](f func(S) R) func(S) R {
	m := newCache[uint64, R]()
	return func(s S) R {
		return m.invokeWith(KeyFor(s), func() R { return f(s) })
	}
}
