package repository

import (
	"context"
	"time"
)

// CacheRepository caches serialized comparison results keyed by request
// hash. A miss is (_, false); cache failures are never fatal to a request.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
