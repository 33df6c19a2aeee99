// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"agri_backend/internal/feature/market/domain/entity"
	"agri_backend/internal/feature/market/usecase"
)

// RecordRepository bundles the read and write sides the decorator wraps.
type RecordRepository interface {
	usecase.RecordRepository
	usecase.RecordStore
}

// CachingRecordRepository decorates a record repository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingRecordRepository struct {
	inner     RecordRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ RecordRepository = (*CachingRecordRepository)(nil)

// NewCachingRecordRepository decorates a record repository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "records".
func NewCachingRecordRepository(rdb *redis.Client, ttl time.Duration, inner RecordRepository, namespace string) *CachingRecordRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "records"
	}
	return &CachingRecordRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch inserts or updates records and invalidates related cache entries.
func (c *CachingRecordRepository) UpsertBatch(ctx context.Context, records []entity.PriceRecord) error {
	// First upsert to the underlying repository (MySQL)
	if err := c.inner.UpsertBatch(ctx, records); err != nil {
		return err
	}
	// Exit early if Redis is not configured or there are no records
	if c.rdb == nil || len(records) == 0 {
		return nil
	}

	// Invalidate affected cache entries (keys per region+commodity)
	seen := map[string]struct{}{}
	for _, r := range records {
		key := c.cacheKey(r.Region, r.Commodity)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		_ = c.deleteByPattern(ctx, key+"*") // Best effort: don't fail if cache deletion fails
	}
	return nil
}

// Find retrieves records, checking cache first then falling back to the database.
func (c *CachingRecordRepository) Find(ctx context.Context, region, commodity string) ([]entity.PriceRecord, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Find(ctx, region, commodity)
	}

	key := c.cacheKey(region, commodity)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.PriceRecord
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Find(ctx, region, commodity)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a (region, commodity) pair.
func (c *CachingRecordRepository) cacheKey(region, commodity string) string {
	return fmt.Sprintf("%s:%s:%s",
		c.namespace,
		safe(region),
		safe(commodity),
	)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingRecordRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	// Simple escaping of characters that are problematic for Redis keys
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
