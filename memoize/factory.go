package memoize

import (
	"time"

	"go.uber.org/zap"
)

type config struct {
	maxCacheSize    int
	expiration      time.Duration
	cleanupInterval time.Duration
	clock           func() time.Time
}

func newConfig(opts ...Option) config {
	cfg := config{
		cleanupInterval: defaultCleanupInterval,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures the factory-built wrappers.
type Option func(*config)

// WithMaxCacheSize bounds the cache to n entries, evicting the least
// recently accessed beyond the bound. n <= 0 leaves the cache unbounded.
func WithMaxCacheSize(n int) Option {
	return func(c *config) { c.maxCacheSize = n }
}

// WithExpiration gives each entry a sliding expiration window. d <= 0 means
// entries never expire.
func WithExpiration(d time.Duration) Option {
	return func(c *config) { c.expiration = d }
}

// WithCleanupInterval bounds how often a batched sweep of expired entries
// may run.
func WithCleanupInterval(d time.Duration) Option {
	return func(c *config) { c.cleanupInterval = d }
}

// WithClock substitutes the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.clock = now }
}

func (c config) bounded() bool {
	return c.maxCacheSize > 0 || c.expiration > 0
}

// Create returns a plain memoized callable for f, backed by the expiring
// implementation when a size or expiration bound is set and by the simple
// unbounded cache otherwise.
func Create[K comparable, R any](f func(K) R, opts ...Option) func(K) R {
	return CreateConfigurable(f, opts...).Invoke
}

// CreateConfigurable is Create exposing the full inspection surface of the
// backing wrapper.
func CreateConfigurable[K comparable, R any](f func(K) R, opts ...Option) Function[K, R] {
	cfg := newConfig(opts...)
	logger, _ := zap.NewProduction()
	if cfg.bounded() {
		logger.Sugar().Debugf(
			"created expiring memoized function: maxCacheSize=%d expiration=%v",
			cfg.maxCacheSize, cfg.expiration,
		)
		return NewExpiringMemoizedFunction(f, cfg.maxCacheSize, cfg.expiration,
			WithCleanupInterval(cfg.cleanupInterval),
			WithClock(cfg.clock),
		)
	}
	logger.Sugar().Debugf("created unbounded memoized function")
	return NewMemoizedFunction(f)
}
