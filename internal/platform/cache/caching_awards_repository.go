// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"sbir_backend/internal/feature/awards/domain/entity"
	"sbir_backend/internal/feature/awards/usecase"
)

// CachingAwardsRepository decorates an AwardsRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Fetch failures are never cached.
type CachingAwardsRepository struct {
	inner     usecase.AwardsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingAwardsRepository decorates an AwardsRepository with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses "awards".
func NewCachingAwardsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AwardsRepository, namespace string) *CachingAwardsRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "awards"
	}
	return &CachingAwardsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Search retrieves award records, checking the cache first and falling back
// to the underlying repository (the SBIR.gov API).
func (c *CachingAwardsRepository) Search(ctx context.Context, firm string) ([]entity.Award, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, firm)
	}

	key := c.cacheKey(firm)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Award
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the underlying repository
	out, err := c.inner.Search(ctx, firm)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate removes the cached entry for a firm. It cascades to the inner
// repository when that repository also supports invalidation.
func (c *CachingAwardsRepository) Invalidate(ctx context.Context, firm string) error {
	if inv, ok := c.inner.(usecase.CacheInvalidator); ok {
		if err := inv.Invalidate(ctx, firm); err != nil {
			return err
		}
	}
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.cacheKey(firm)).Err()
}

// cacheKey generates the cache key for a firm.
func (c *CachingAwardsRepository) cacheKey(firm string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(firm))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
