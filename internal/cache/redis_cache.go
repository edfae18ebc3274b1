package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shihan84/cg-overlay/internal/config"
)

var ErrCacheMiss = errors.New("cache miss")

// RedisOverlayCache implements OverlayCache on go-redis.
type RedisOverlayCache struct {
	client *redis.Client
	prefix string
}

func NewRedisOverlayCache(cfg config.RedisConfig, prefix string) (*RedisOverlayCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisOverlayCache{
		client: client,
		prefix: prefix,
	}, nil
}

func (c *RedisOverlayCache) BuildKeyByID(overlayID string) string {
	return fmt.Sprintf("%s:id:%s", c.prefix, overlayID)
}

func (c *RedisOverlayCache) Get(ctx context.Context, key string) (*OverlayCacheResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var result OverlayCacheResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	return &result, nil
}

func (c *RedisOverlayCache) Set(ctx context.Context, key string, result *OverlayCacheResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	return nil
}

func (c *RedisOverlayCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}

	return nil
}

func (c *RedisOverlayCache) Close() error {
	return c.client.Close()
}
