package memoize

import (
	ristretto "github.com/dgraph-io/ristretto/v2"
)

// Store is a minimal cache surface a memoized function can be backed by,
// for callers that want to bring their own eviction policy instead of the
// inspectable built-in wrappers.
type Store[K comparable, R any] interface {
	Get(key K) (R, bool)
	Set(key K, value R)
	Delete(key K)
}

// CreateWithStore wraps f read-through over an external store. Whether a
// computed result is retained is the store's business; a store that drops or
// delays admission simply recomputes on the next call.
func CreateWithStore[K comparable, R any](f func(K) R, store Store[K, R]) func(K) R {
	return func(key K) R {
		if v, ok := store.Get(key); ok {
			return v
		}
		v := f(key)
		store.Set(key, v)
		return v
	}
}

type ristrettoKey interface {
	ristretto.Key
	comparable
}

// RistrettoStore backs a memoized function with a ristretto cache:
// admission-based, high-throughput, no inspection surface.
type RistrettoStore[K ristrettoKey, R any] struct {
	cache *ristretto.Cache[K, R]
}

// NewRistrettoStore builds a store sized for roughly maxEntries uniform-cost
// entries.
func NewRistrettoStore[K ristrettoKey, R any](maxEntries int64) (*RistrettoStore[K, R], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[K, R]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &RistrettoStore[K, R]{cache: cache}, nil
}

func (s *RistrettoStore[K, R]) Get(key K) (R, bool) {
	return s.cache.Get(key)
}

func (s *RistrettoStore[K, R]) Set(key K, value R) {
	s.cache.Set(key, value, 1)
}

func (s *RistrettoStore[K, R]) Delete(key K) {
	s.cache.Del(key)
}

// Wait blocks until pending Set operations have been admitted or dropped.
func (s *RistrettoStore[K, R]) Wait() {
	s.cache.Wait()
}

// Close releases the underlying cache's resources.
func (s *RistrettoStore[K, R]) Close() {
	s.cache.Close()
}
