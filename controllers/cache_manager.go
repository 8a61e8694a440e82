package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-backend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productListCachePrefix = "products:v:"
	cacheVersionKey        = "products:version"

	defaultCacheTTL = 5 * time.Minute
)

// CacheManager caches product list responses in Redis. Keys are versioned;
// invalidation bumps the version so stale lists simply expire. Every cache
// failure degrades to the database path.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{redis: client, ttl: defaultCacheTTL}
}

// GetProductList retrieves a cached product list for the given category
// filter ("all" when unfiltered).
func (cm *CacheManager) GetProductList(ctx context.Context, categoryFilter string) ([]models.PopulatedProduct, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}

	version, err := cm.getCacheVersion(ctx)
	if err != nil || version == 0 {
		return nil, false
	}

	cachedData, err := cm.redis.Get(ctx, cm.listKey(version, categoryFilter)).Result()
	if err != nil {
		return nil, false
	}

	var products []models.PopulatedProduct
	if err := json.Unmarshal([]byte(cachedData), &products); err != nil {
		zap.L().Warn("Failed to unmarshal cached product list", zap.Error(err))
		return nil, false
	}
	return products, true
}

// SetProductListAsync caches a product list without blocking the request.
func (cm *CacheManager) SetProductListAsync(categoryFilter string, products []models.PopulatedProduct) {
	if cm == nil || cm.redis == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.getCacheVersion(bgCtx)
		if err != nil || version == 0 {
			return
		}

		jsonBytes, err := json.Marshal(products)
		if err != nil {
			zap.L().Warn("Failed to marshal product list for cache", zap.Error(err))
			return
		}

		if err := cm.redis.Set(bgCtx, cm.listKey(version, categoryFilter), jsonBytes, cm.ttl).Err(); err != nil {
			zap.L().Warn("Failed to cache product list", zap.Error(err))
		}
	}()
}

// InvalidateProductLists bumps the cache version, orphaning all cached
// lists. Called after a product write.
func (cm *CacheManager) InvalidateProductLists(ctx context.Context) {
	if cm == nil || cm.redis == nil {
		return
	}
	if err := cm.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Warn("Failed to bump product cache version", zap.Error(err))
	}
}

func (cm *CacheManager) listKey(version int64, categoryFilter string) string {
	return fmt.Sprintf("%s%d:%s", productListCachePrefix, version, categoryFilter)
}

func (cm *CacheManager) getCacheVersion(ctx context.Context) (int64, error) {
	version, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	return version, err
}
