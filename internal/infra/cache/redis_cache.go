// Package cache implements the product read cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTTL         = 5 * time.Minute
	keyPrefix          = "storefront:"
	featuredProductKey = keyPrefix + "products:featured"
)

func productKey(id uint64) string {
	return keyPrefix + "product:" + strconv.FormatUint(id, 10)
}

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Params holds dependencies for the product cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache returns a Redis-backed cache, or a no-op cache when redis.addr is empty.
func NewProductCache(params Params) service.ProductCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return noopProductCache{}
	}

	c := newRedisProductCache(cfg)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only degrades reads.
			if err := c.client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, product reads will hit MySQL",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return c.client.Close()
		},
	})

	return c
}

func newRedisProductCache(cfg *config.RedisConfig) *redisProductCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisProductCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		ttl: ttl,
	}
}

func (c *redisProductCache) GetProduct(ctx context.Context, id uint64) (*entity.Product, error) {
	var product entity.Product
	if err := c.getJSON(ctx, productKey(id), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *redisProductCache) SetProduct(ctx context.Context, product *entity.Product) error {
	return c.setJSON(ctx, productKey(product.ID), product)
}

func (c *redisProductCache) GetFeatured(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := c.getJSON(ctx, featuredProductKey, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *redisProductCache) SetFeatured(ctx context.Context, products []*entity.Product) error {
	return c.setJSON(ctx, featuredProductKey, products)
}

func (c *redisProductCache) Invalidate(ctx context.Context, id uint64) error {
	return errors.Wrap(c.client.Del(ctx, productKey(id), featuredProductKey).Err(), "redis del")
}

func (c *redisProductCache) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, key, data, c.ttl).Err(), "redis set")
}

func (c *redisProductCache) getJSON(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return service.ErrCacheMiss
		}

		return errors.Wrap(err, "redis get")
	}

	return errors.WithStack(json.Unmarshal(data, dest))
}

// noopProductCache always misses.
type noopProductCache struct{}

func (noopProductCache) GetProduct(context.Context, uint64) (*entity.Product, error) {
	return nil, service.ErrCacheMiss
}

func (noopProductCache) SetProduct(context.Context, *entity.Product) error { return nil }

func (noopProductCache) GetFeatured(context.Context) ([]*entity.Product, error) {
	return nil, service.ErrCacheMiss
}

func (noopProductCache) SetFeatured(context.Context, []*entity.Product) error { return nil }

func (noopProductCache) Invalidate(context.Context, uint64) error { return nil }
