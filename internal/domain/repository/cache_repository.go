package repository

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching serialized HTTP responses.
type CacheRepository interface {
	// GetResponse retrieves a cached response body, returning found status.
	GetResponse(ctx context.Context, key string) ([]byte, bool, error)

	// SetResponse stores a response body under key with a specified TTL.
	SetResponse(ctx context.Context, key string, body []byte, ttl time.Duration) error
}
