package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/billing-tracker/internal/config"
)

const keyPrefix = "billing:summary"

// RedisSummaryCache namespaces keys by a generation counter. Invalidate bumps
// the counter; entries of older generations are left to expire.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSummaryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisSummaryCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("cache"),
	}
}

// New returns the redis cache when REDIS_ADDR is set and reachable, otherwise
// a no-op cache. An unreachable redis never blocks startup.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) SummaryCache {
	if !cfg.CacheEnabled() {
		logger.Info("summary cache disabled")
		return Noop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, summary cache disabled",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = client.Close()
		return Noop{}
	}

	logger.Info("summary cache enabled", zap.String("addr", cfg.RedisAddr))
	return NewRedisSummaryCache(client, cfg.SummaryCacheTTL, logger)
}

func (c *RedisSummaryCache) generationKey() string {
	return keyPrefix + ":gen"
}

func (c *RedisSummaryCache) generation(ctx context.Context) (Generation, error) {
	gen, err := c.client.Get(ctx, c.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return Generation(gen), err
}

func (c *RedisSummaryCache) key(gen Generation, key string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, gen, key)
}

// Get resolves the current generation once and reports it even on a miss.
func (c *RedisSummaryCache) Get(ctx context.Context, key string, dst any) (Generation, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return 0, err
	}

	k := c.key(gen, key)
	raw, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, ErrMiss
	}
	if err != nil {
		return gen, err
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", k), zap.Error(err))
		return gen, ErrMiss
	}
	return gen, nil
}

// Set writes under gen, not the current generation. A value computed before
// an Invalidate therefore never becomes visible after it.
func (c *RedisSummaryCache) Set(ctx context.Context, gen Generation, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(gen, key), raw, c.ttl).Err()
}

func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, c.generationKey()).Err()
}

func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}
