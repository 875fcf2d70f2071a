package strategy

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/voyago/tripcost/pricing"
)

// CacheRecorder receives cache hit/miss observations. The metrics collector
// satisfies it; a nil recorder disables recording.
type CacheRecorder interface {
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
}

const cacheType = "transport_strategy"

// entry is a cached strategy with its creation time.
type entry struct {
	strategy  TransportationStrategy
	createdAt time.Time
}

// Cache memoizes per-country transportation strategies with a TTL. It is
// process-wide and safe for concurrent use by multiple in-flight requests;
// singleflight collapses concurrent recomputation of the same country.
// Stale entries are replaced wholesale, never merged.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl     time.Duration
	tiers   *pricing.Service
	group   singleflight.Group
	logger  *zap.Logger
	metrics CacheRecorder

	// now is swappable for TTL tests.
	now func() time.Time
}

// NewCache creates a strategy cache. metrics may be nil.
func NewCache(ttl time.Duration, tiers *pricing.Service, metrics CacheRecorder, logger *zap.Logger) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		tiers:   tiers,
		logger:  logger.With(zap.String("component", "strategy_cache")),
		metrics: metrics,
		now:     time.Now,
	}
}

// GetStrategy returns the transportation strategy for a country. It never
// fails: derivation errors yield the conservative default strategy, recorded
// but not propagated, so the classifier is never blocked.
func (c *Cache) GetStrategy(ctx context.Context, country string) TransportationStrategy {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return DefaultStrategy()
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.now().Sub(e.createdAt) < c.ttl {
		if c.metrics != nil {
			c.metrics.RecordCacheHit(cacheType)
		}
		return e.strategy
	}

	if c.metrics != nil {
		c.metrics.RecordCacheMiss(cacheType)
	}

	// An expired entry is treated as a miss and recomputed; singleflight
	// keeps concurrent requests from duplicating the work.
	v, _, _ := c.group.Do(key, func() (any, error) {
		s, err := derive(country, c.tiers)
		if err != nil {
			c.logger.Warn("strategy derivation failed, using conservative default",
				zap.String("country", country),
				zap.Error(err),
			)
			s = DefaultStrategy()
		}

		c.mu.Lock()
		c.entries[key] = entry{strategy: s, createdAt: c.now()}
		c.mu.Unlock()

		c.logger.Debug("strategy computed",
			zap.String("country", country),
			zap.Float64("max_ground_distance_km", s.MaxGroundDistanceKM),
			zap.String("size_category", s.SizeCategory),
		)
		return s, nil
	})

	return v.(TransportationStrategy)
}

// Len returns the number of cached entries, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
