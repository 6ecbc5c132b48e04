package cache

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"go.uber.org/zap"
)

// Cache keys of the directory listings
const (
	EventsKey   = "events"
	TeachersKey = "teachers"
)

// DirectoryCache is a read-through TTL cache for directory listings
// (events, teachers). A disabled cache always loads from the source.
type DirectoryCache struct {
	cache    *gocache.Cache
	ttl      time.Duration
	disabled bool
}

// NewDirectoryCache creates a directory cache. A non-positive ttl disables it.
func NewDirectoryCache(ttl time.Duration, disabled bool) *DirectoryCache {
	if ttl <= 0 {
		disabled = true
	}

	return &DirectoryCache{
		cache:    gocache.New(ttl, 2*ttl),
		ttl:      ttl,
		disabled: disabled,
	}
}

// Enabled reports whether lookups may be served from memory
func (dc *DirectoryCache) Enabled() bool {
	return !dc.disabled
}

// Invalidate drops one cached listing. A nil cache is a no-op.
func (dc *DirectoryCache) Invalidate(key string) {
	if dc == nil {
		return
	}
	dc.cache.Delete(key)
}

// GetOrLoad returns the cached value under key or calls load and caches its
// result. Load errors are returned as is and nothing is cached.
func GetOrLoad[T any](ctx context.Context, dc *DirectoryCache, key string, load func(context.Context) (T, error)) (T, error) {
	if dc == nil || dc.disabled {
		return load(ctx)
	}

	if data, found := dc.cache.Get(key); found {
		if value, ok := data.(T); ok {
			metrics.CacheHits.WithLabelValues(key).Inc()
			logger.Debug("Directory cache hit", zap.String("key", key))
			return value, nil
		}
		logger.Error("Invalid directory cache data type", zap.String("key", key), zap.String("type", fmt.Sprintf("%T", data)))
		dc.cache.Delete(key)
	}

	metrics.CacheMisses.WithLabelValues(key).Inc()

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	dc.cache.Set(key, value, dc.ttl)
	logger.Debug("Directory cache refreshed", zap.String("key", key))

	return value, nil
}
