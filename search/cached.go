package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/tripcost/internal/cache"
	"github.com/voyago/tripcost/types"
)

// CacheRecorder receives cache hit/miss observations. The metrics collector
// satisfies it; a nil recorder disables recording.
type CacheRecorder interface {
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
}

// CachedService decorates a search Service with a redis result cache. The
// cache is best effort: any cache failure falls through to the inner service
// so a redis outage degrades latency, never availability.
type CachedService struct {
	inner   Service
	cache   *cache.Manager
	ttl     time.Duration
	metrics CacheRecorder
	logger  *zap.Logger
}

// NewCachedService wraps a search service with caching. metrics may be nil.
func NewCachedService(inner Service, mgr *cache.Manager, ttl time.Duration, metrics CacheRecorder, logger *zap.Logger) *CachedService {
	return &CachedService{
		inner:   inner,
		cache:   mgr,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger.With(zap.String("component", "search_cache")),
	}
}

func cacheKey(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		normalized = append(normalized, strings.ToLower(strings.Join(strings.Fields(p), " ")))
	}
	return "search:" + strings.Join(normalized, ":")
}

func (s *CachedService) record(hit bool, cacheType string) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.RecordCacheHit(cacheType)
	} else {
		s.metrics.RecordCacheMiss(cacheType)
	}
}

// lookup tries the cache and reports whether dest was populated. Errors other
// than a miss are logged and treated as a miss.
func (s *CachedService) lookup(ctx context.Context, key, cacheType string, dest any) bool {
	err := s.cache.GetJSON(ctx, key, dest)
	if err == nil {
		s.record(true, cacheType)
		return true
	}
	if !cache.IsCacheMiss(err) {
		s.logger.Warn("cache lookup failed, falling through", zap.String("key", key), zap.Error(err))
	}
	s.record(false, cacheType)
	return false
}

func (s *CachedService) store(ctx context.Context, key string, value any) {
	if err := s.cache.SetJSON(ctx, key, value, s.ttl); err != nil {
		s.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
}

// SearchFlights implements Service with flight result caching.
func (s *CachedService) SearchFlights(ctx context.Context, q *FlightQuery) ([]types.FlightOption, error) {
	key := cacheKey("flights", q.OriginCode, q.DestinationCode, q.Date.String(), fmt.Sprint(q.Travelers))

	var cached []types.FlightOption
	if s.lookup(ctx, key, "flight_search", &cached) {
		return cached, nil
	}

	options, err := s.inner.SearchFlights(ctx, q)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, options)
	return options, nil
}

// SearchHotels implements Service with hotel result caching.
func (s *CachedService) SearchHotels(ctx context.Context, q *HotelQuery) ([]types.HotelOption, error) {
	key := cacheKey("hotels", q.Destination, q.CheckIn.String(), q.CheckOut.String(),
		fmt.Sprint(q.Travelers), string(q.Vibe))

	var cached []types.HotelOption
	if s.lookup(ctx, key, "hotel_search", &cached) {
		return cached, nil
	}

	options, err := s.inner.SearchHotels(ctx, q)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, options)
	return options, nil
}

// SearchActivities implements Service with activity result caching.
func (s *CachedService) SearchActivities(ctx context.Context, q *ActivityQuery) ([]string, error) {
	key := cacheKey("activities", q.Destination, string(q.Vibe))

	var cached []string
	if s.lookup(ctx, key, "activity_search", &cached) {
		return cached, nil
	}

	activities, err := s.inner.SearchActivities(ctx, q)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, activities)
	return activities, nil
}
