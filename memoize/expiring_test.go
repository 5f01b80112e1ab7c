package memoize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goutcome/outcome_go/memoize"
)

// fakeClock drives the cache's notion of time from the test.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.current }
func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func TestExpiringRefreshesOnAccess(t *testing.T) {
	clock := newFakeClock()
	count := 0
	m := memoize.NewExpiringMemoizedFunction(func(k string) int {
		count++
		return len(k)
	}, 0, time.Minute, memoize.WithClock(clock.now))

	assert.Equal(t, 5, m.Invoke("hello"))
	assert.Equal(t, 1, count)

	// Each access within the window refreshes the sliding expiration.
	clock.advance(40 * time.Second)
	assert.Equal(t, 5, m.Invoke("hello"))
	clock.advance(40 * time.Second)
	assert.Equal(t, 5, m.Invoke("hello"))
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(2), m.HitCount())
}

func TestExpiredEntryIsEvictedAndRecomputed(t *testing.T) {
	clock := newFakeClock()
	count := 0
	m := memoize.NewExpiringMemoizedFunction(func(k string) int {
		count++
		return len(k)
	}, 0, time.Minute, memoize.WithClock(clock.now))

	m.Invoke("hello")
	clock.advance(61 * time.Second)

	assert.False(t, m.ContainsKey("hello"))
	assert.Equal(t, 5, m.Invoke("hello"))
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(0), m.HitCount())
	assert.Equal(t, int64(2), m.MissCount())
}

func TestSweepRunsAtMostOncePerInterval(t *testing.T) {
	clock := newFakeClock()
	m := memoize.NewExpiringMemoizedFunction(func(k string) int {
		return len(k)
	}, 0, 10*time.Second,
		memoize.WithClock(clock.now),
		memoize.WithCleanupInterval(time.Minute),
	)

	m.Invoke("a")
	m.Invoke("b")

	// Both entries are expired here, but the sweep is not due yet, so they
	// linger in the map while lookups already refuse them.
	clock.advance(30 * time.Second)
	m.Invoke("c")
	assert.Equal(t, 3, m.CacheSize())
	assert.False(t, m.ContainsKey("a"))
	assert.False(t, m.ContainsKey("b"))

	// Past the interval the batched sweep evicts everything expired.
	clock.advance(31 * time.Second)
	m.Invoke("d")
	assert.Equal(t, 1, m.CacheSize())
	assert.True(t, m.ContainsKey("d"))
}

func TestEvictsLeastRecentlyAccessedBeyondLimit(t *testing.T) {
	clock := newFakeClock()
	m := memoize.NewExpiringMemoizedFunction(func(k string) int {
		return len(k)
	}, 2, 0, memoize.WithClock(clock.now))

	m.Invoke("a")
	clock.advance(time.Second)
	m.Invoke("b")
	clock.advance(time.Second)

	// Touch "a" so "b" becomes the least recently accessed.
	m.Invoke("a")
	clock.advance(time.Second)

	m.Invoke("c")
	assert.Equal(t, 2, m.CacheSize())
	assert.True(t, m.ContainsKey("a"))
	assert.False(t, m.ContainsKey("b"))
	assert.True(t, m.ContainsKey("c"))
}

func TestExpiringClearCacheResetsCounters(t *testing.T) {
	m := memoize.NewExpiringMemoizedFunction(func(k int) int { return k }, 4, time.Minute)

	m.Invoke(1)
	m.Invoke(1)
	m.Invoke(2)
	assert.Equal(t, 2, m.CacheSize())

	m.ClearCache()
	assert.Equal(t, 0, m.CacheSize())
	assert.Equal(t, int64(0), m.HitCount())
	assert.Equal(t, int64(0), m.MissCount())
	assert.Equal(t, 0.0, m.HitRatio())
}

func TestExpiringRemoveFromCache(t *testing.T) {
	m := memoize.NewExpiringMemoizedFunction(func(k int) int { return k }, 0, 0)

	m.Invoke(1)
	m.Invoke(2)
	assert.True(t, m.RemoveFromCache(1))
	assert.False(t, m.RemoveFromCache(1))
	assert.Equal(t, 1, m.CacheSize())
	assert.False(t, m.ContainsKey(1))
	assert.True(t, m.ContainsKey(2))
}
