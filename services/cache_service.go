package services

import (
	"context"
	"encoding/json"
	"fmt"
	"minitienda_server/config"
	"minitienda_server/structs"
	"minitienda_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// Cache key layout:
//
//	catalog:categories                      category list with product counts
//	catalog:products:<category|all>:<page>  active product listing pages
//	catalog:product:<slug>                  active product detail
const (
	categoriesCacheKey  = "catalog:categories"
	productListKeyFmt   = "catalog:products:%s:%d"
	productDetailKeyFmt = "catalog:product:%s"
)

// CacheService provides Redis caching for the public catalog reads
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			MaxRetries: cfg.Cache.MaxRetries,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// ConnectionStats returns pool statistics for the health endpoint
func (cs *CacheService) ConnectionStats() map[string]any {
	stats := cs.client.PoolStats()
	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

// setJSON marshals a value and stores it under key with the given TTL
func (cs *CacheService) setJSON(key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return cs.client.Set(redisCtx, key, payload, ttl).Err()
}

// getJSON loads a key into dest; returns false on a cache miss
func (cs *CacheService) getJSON(key string, dest any) (bool, error) {
	payload, err := cs.client.Get(redisCtx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (cs *CacheService) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return cs.client.Del(redisCtx, keys...).Err()
}

// DeletePattern removes all keys matching the pattern using SCAN to avoid
// blocking Redis
func (cs *CacheService) DeletePattern(pattern string) error {
	iter := cs.client.Scan(redisCtx, 0, pattern, 100).Iterator()

	var keys []string
	for iter.Next(redisCtx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys for pattern %s: %w", pattern, err)
	}

	return cs.Delete(keys...)
}

// GetCategories returns the cached category list, or (nil, false, nil) on miss
func (cs *CacheService) GetCategories() ([]tables.Category, bool, error) {
	var categories []tables.Category
	hit, err := cs.getJSON(categoriesCacheKey, &categories)
	return categories, hit, err
}

func (cs *CacheService) SetCategories(categories []tables.Category) error {
	return cs.setJSON(categoriesCacheKey, categories, cs.config.Cache.ListTTL)
}

// GetProductListing returns a cached listing page. categorySlug may be empty
// for the unfiltered listing.
func (cs *CacheService) GetProductListing(categorySlug string, page int) (*ProductListResult, bool, error) {
	var result ProductListResult
	hit, err := cs.getJSON(productListingKey(categorySlug, page), &result)
	if !hit || err != nil {
		return nil, false, err
	}
	return &result, true, nil
}

func (cs *CacheService) SetProductListing(categorySlug string, page int, result *ProductListResult) error {
	return cs.setJSON(productListingKey(categorySlug, page), result, cs.config.Cache.ListTTL)
}

func (cs *CacheService) GetProductBySlug(slug string) (*tables.Product, bool, error) {
	var product tables.Product
	hit, err := cs.getJSON(fmt.Sprintf(productDetailKeyFmt, slug), &product)
	if !hit || err != nil {
		return nil, false, err
	}
	return &product, true, nil
}

func (cs *CacheService) SetProductBySlug(product *tables.Product) error {
	return cs.setJSON(fmt.Sprintf(productDetailKeyFmt, product.Slug), product, cs.config.Cache.DetailTTL)
}

// InvalidateCatalogCaches drops every cached catalog read. Called after any
// category or product write; listing pages are too interdependent to evict
// selectively.
func (cs *CacheService) InvalidateCatalogCaches() error {
	if err := cs.DeletePattern("catalog:*"); err != nil {
		return fmt.Errorf("failed to invalidate catalog caches: %w", err)
	}
	return nil
}

func productListingKey(categorySlug string, page int) string {
	if categorySlug == "" {
		categorySlug = "all"
	}
	return fmt.Sprintf(productListKeyFmt, categorySlug, page)
}
