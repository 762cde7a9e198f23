package question

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-bank/internal/metrics"
)

const (
	defaultCacheTTL  = 5 * time.Minute
	categoryCacheKey = "trivia:categories"
)

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CategoryCache keeps the seeded category catalog in Redis in front of another CategoryStore.
// Questions are never cached. Redis failures fall through to the wrapped store.
type CategoryCache struct {
	client  redisKV
	next    CategoryStore
	ttl     time.Duration
	metrics *metrics.Collector
	logger  zerolog.Logger
}

var _ CategoryStore = (*CategoryCache)(nil)

func NewCategoryCache(client redisKV, next CategoryStore, ttl time.Duration, collector *metrics.Collector, logger zerolog.Logger) *CategoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CategoryCache{
		client:  client,
		next:    next,
		ttl:     ttl,
		metrics: collector,
		logger:  logger.With().Str("component", "category_cache").Logger(),
	}
}

func (c *CategoryCache) ListCategories(ctx context.Context) ([]Category, error) {
	if cached, ok := c.get(ctx); ok {
		c.metrics.CacheHit()
		return cached, nil
	}
	c.metrics.CacheMiss()

	categories, err := c.next.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	// an empty catalog is left uncached so seeding shows up immediately
	if len(categories) > 0 {
		c.set(ctx, categories)
	}
	return categories, nil
}

func (c *CategoryCache) get(ctx context.Context) ([]Category, bool) {
	data, err := c.client.Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("category cache read failed")
		}
		return nil, false
	}
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		c.logger.Warn().Err(err).Msg("category cache payload decode failed")
		return nil, false
	}
	return categories, true
}

func (c *CategoryCache) set(ctx context.Context, categories []Category) {
	data, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, categoryCacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("category cache write failed")
	}
}
