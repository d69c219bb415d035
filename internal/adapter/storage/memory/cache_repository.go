package memory

import (
	"context"
	"fmt"
	"time"

	"tokenmeta-proxy/internal/config"
	domainRepo "tokenmeta-proxy/internal/domain/repository"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

const responseKeyPrefix = "token_metadata_v1_"

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
type CacheRepository struct {
	cache             *cache.Cache
	defaultExpiration time.Duration
	logger            *zap.Logger
}

// NewCacheRepository creates a new in-memory cache repository instance.
func NewCacheRepository(cfg config.CacheConfig, logger *zap.Logger) *CacheRepository {
	defaultExpiration := cfg.GetDefaultExpiration()
	cleanupInterval := cfg.GetCleanupInterval()

	c := cache.New(defaultExpiration, cleanupInterval)
	logger.Info(
		"Initialized go-cache for memory storage",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval),
	)

	return &CacheRepository{
		cache:             c,
		defaultExpiration: defaultExpiration,
		logger:            logger.Named("MemoryCacheStorage"),
	}
}

// GetResponse retrieves a cached response body, returning found status.
func (r *CacheRepository) GetResponse(_ context.Context, key string) ([]byte, bool, error) {
	fullKey := responseKeyPrefix + key
	if x, found := r.cache.Get(fullKey); found {
		if body, ok := x.([]byte); ok {
			r.logger.Debug("Memory cache hit", zap.String("key", fullKey))
			return body, true, nil
		}
		r.logger.Warn(
			"Memory cache data type mismatch for key",
			zap.String("key", fullKey), zap.Any("type", fmt.Sprintf("%T", x)),
		)
	}
	r.logger.Debug("Memory cache miss", zap.String("key", fullKey))
	return nil, false, nil
}

// SetResponse caches a response body with a given TTL. A non-positive ttl uses the configured default.
func (r *CacheRepository) SetResponse(_ context.Context, key string, body []byte, ttl time.Duration) error {
	fullKey := responseKeyPrefix + key
	if ttl <= 0 {
		ttl = r.defaultExpiration
	}
	r.cache.Set(fullKey, append([]byte(nil), body...), ttl)
	r.logger.Debug("Memory cache set", zap.String("key", fullKey), zap.Duration("ttl", ttl))
	return nil
}

// ItemCount returns the number of cached responses, including expired ones not yet cleaned up.
func (r *CacheRepository) ItemCount() int {
	return r.cache.ItemCount()
}
