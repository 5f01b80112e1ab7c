package memoize

import (
	"sync"
	"sync/atomic"
	"time"
)

// defaultCleanupInterval bounds how often a sweep of expired entries may
// run, so expiry is checked opportunistically in batches rather than
// eagerly on every call.
const defaultCleanupInterval = time.Minute

type expiringEntry[R any] struct {
	value R
	// lastAccessed drives both the sliding expiration window and
	// LRU-by-access eviction; refreshed on every hit.
	lastAccessed time.Time
}

// ExpiringMemoizedFunction is MemoizedFunction with optional bounds: a
// sliding expiration window per entry, a maximum cache size enforced by
// evicting the least-recently-accessed entries, or both. A zero bound
// disables that bound.
type ExpiringMemoizedFunction[K comparable, R any] struct {
	fn              func(K) R
	maxCacheSize    int
	expiration      time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	mu          sync.Mutex
	cache       map[K]*expiringEntry[R]
	lastCleanup time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

// NewExpiringMemoizedFunction wraps f. maxCacheSize <= 0 means unbounded;
// expiration <= 0 means entries never expire.
func NewExpiringMemoizedFunction[K comparable, R any](
	f func(K) R,
	maxCacheSize int,
	expiration time.Duration,
	opts ...Option,
) *ExpiringMemoizedFunction[K, R] {
	cfg := newConfig(opts...)
	m := &ExpiringMemoizedFunction[K, R]{
		fn:              f,
		maxCacheSize:    maxCacheSize,
		expiration:      expiration,
		cleanupInterval: cfg.cleanupInterval,
		now:             cfg.clock,
		cache:           make(map[K]*expiringEntry[R]),
	}
	m.lastCleanup = m.now()
	return m
}

// Invoke returns the cached, unexpired result for key, refreshing its
// last-accessed timestamp. An expired entry is evicted and recomputed, which
// counts as a miss.
func (m *ExpiringMemoizedFunction[K, R]) Invoke(key K) R {
	now := m.now()

	m.mu.Lock()
	m.maybeSweepLocked(now)
	if e, ok := m.cache[key]; ok {
		if !m.expiredAt(e, now) {
			e.lastAccessed = now
			m.mu.Unlock()
			m.hits.Add(1)
			return e.value
		}
		delete(m.cache, key)
	}
	m.mu.Unlock()

	m.misses.Add(1)
	v := m.fn(key)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[key] = &expiringEntry[R]{value: v, lastAccessed: m.now()}
	m.evictOverLimitLocked()
	return v
}

func (m *ExpiringMemoizedFunction[K, R]) expiredAt(e *expiringEntry[R], now time.Time) bool {
	return m.expiration > 0 && now.Sub(e.lastAccessed) >= m.expiration
}

// maybeSweepLocked batch-evicts every expired entry, at most once per
// cleanup interval.
func (m *ExpiringMemoizedFunction[K, R]) maybeSweepLocked(now time.Time) {
	if m.expiration <= 0 || now.Sub(m.lastCleanup) < m.cleanupInterval {
		return
	}
	m.lastCleanup = now
	for k, e := range m.cache {
		if m.expiredAt(e, now) {
			delete(m.cache, k)
		}
	}
}

// evictOverLimitLocked drops least-recently-accessed entries until the cache
// is back at the size limit.
func (m *ExpiringMemoizedFunction[K, R]) evictOverLimitLocked() {
	if m.maxCacheSize <= 0 {
		return
	}
	for len(m.cache) > m.maxCacheSize {
		var (
			oldestKey K
			oldest    time.Time
			found     bool
		)
		for k, e := range m.cache {
			if !found || e.lastAccessed.Before(oldest) {
				oldestKey, oldest, found = k, e.lastAccessed, true
			}
		}
		delete(m.cache, oldestKey)
	}
}

func (m *ExpiringMemoizedFunction[K, R]) HitCount() int64  { return m.hits.Load() }
func (m *ExpiringMemoizedFunction[K, R]) MissCount() int64 { return m.misses.Load() }

func (m *ExpiringMemoizedFunction[K, R]) TotalAccesses() int64 {
	return m.hits.Load() + m.misses.Load()
}

// HitRatio is the percentage of accesses served from cache, 0 when the
// function has not been invoked yet.
func (m *ExpiringMemoizedFunction[K, R]) HitRatio() float64 {
	total := m.TotalAccesses()
	if total == 0 {
		return 0
	}
	return float64(m.hits.Load()) / float64(total) * 100
}

func (m *ExpiringMemoizedFunction[K, R]) CacheSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}

// ClearCache drops every cached entry and resets both counters.
func (m *ExpiringMemoizedFunction[K, R]) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache = make(map[K]*expiringEntry[R])
	m.hits.Store(0)
	m.misses.Store(0)
}

// RemoveFromCache evicts one key, reporting whether it was present.
func (m *ExpiringMemoizedFunction[K, R]) RemoveFromCache(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cache[key]; !ok {
		return false
	}
	delete(m.cache, key)
	return true
}

// ContainsKey reports whether key is cached and not expired.
func (m *ExpiringMemoizedFunction[K, R]) ContainsKey(key K) bool {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.cache[key]
	return ok && !m.expiredAt(e, now)
}
