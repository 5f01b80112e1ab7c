package memoize

import (
	"sync"
	"sync/atomic"
)

// Function is the inspection surface shared by the memoized cache wrappers.
type Function[K comparable, R any] interface {
	Invoke(key K) R
	HitCount() int64
	MissCount() int64
	TotalAccesses() int64
	HitRatio() float64
	CacheSize() int
	ClearCache()
	RemoveFromCache(key K) bool
	ContainsKey(key K) bool
}

// MemoizedFunction is a stateful, inspectable, unbounded keyed cache around
// a pure single-argument function. Safe for concurrent use; hit and miss
// counters are updated atomically. Under a concurrent first call for the
// same key the function may run more than once — the first stored result
// wins and is what every caller observes afterwards.
type MemoizedFunction[K comparable, R any] struct {
	fn func(K) R

	mu    sync.Mutex
	cache map[K]R

	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemoizedFunction wraps f with an empty cache.
func NewMemoizedFunction[K comparable, R any](f func(K) R) *MemoizedFunction[K, R] {
	m := newCache[K, R]()
	m.fn = f
	return m
}

func newCache[K comparable, R any]() *MemoizedFunction[K, R] {
	return &MemoizedFunction[K, R]{cache: make(map[K]R)}
}

// Invoke returns the cached result for key, computing and caching it on the
// first access.
func (m *MemoizedFunction[K, R]) Invoke(key K) R {
	return m.invokeWith(key, func() R { return m.fn(key) })
}

// invokeWith computes outside the lock so slow computations for one key
// never block lookups for another. A panic inside compute leaves the key
// uncached.
func (m *MemoizedFunction[K, R]) invokeWith(key K, compute func() R) R {
	m.mu.Lock()
	if v, ok := m.cache[key]; ok {
		m.mu.Unlock()
		m.hits.Add(1)
		return v
	}
	m.mu.Unlock()

	m.misses.Add(1)
	v := compute()

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.cache[key]; ok {
		return cached
	}
	m.cache[key] = v
	return v
}

func (m *MemoizedFunction[K, R]) HitCount() int64  { return m.hits.Load() }
func (m *MemoizedFunction[K, R]) MissCount() int64 { return m.misses.Load() }

func (m *MemoizedFunction[K, R]) TotalAccesses() int64 {
	return m.hits.Load() + m.misses.Load()
}

// HitRatio is the percentage of accesses served from cache, 0 when the
// function has not been invoked yet.
func (m *MemoizedFunction[K, R]) HitRatio() float64 {
	total := m.TotalAccesses()
	if total == 0 {
		return 0
	}
	return float64(m.hits.Load()) / float64(total) * 100
}

func (m *MemoizedFunction[K, R]) CacheSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// ClearCache drops every cached entry and resets both counters.
func (m *MemoizedFunction[K, R]) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[K]R)
	m.hits.Store(0)
	m.misses.Store(0)
}

// RemoveFromCache evicts one key, reporting whether it was present.
func (m *MemoizedFunction[K, R]) RemoveFromCache(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cache[key]; !ok {
		return false
	}
	delete(m.cache, key)
	return true
}

func (m *MemoizedFunction[K, R]) ContainsKey(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.cache[key]
	return ok
}
