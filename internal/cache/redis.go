package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/youruser/agentcard/internal/config"
)

const keyPrefix = "agentcard:asset:"

// AssetCache stores raw bytes of remote assets (agent photos, hosted
// backgrounds) so repeated renders of the same card skip the network.
type AssetCache struct {
	Client *redis.Client
	ttl    time.Duration
}

func NewRedis(cfg config.CacheConfig) *AssetCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &AssetCache{Client: rdb, ttl: cfg.TTL}
}

func (c *AssetCache) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Get returns the cached bytes for url; ok is false on a miss.
func (c *AssetCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	b, err := c.Client.Get(ctx, keyPrefix+url).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *AssetCache) Set(ctx context.Context, url string, data []byte) error {
	return c.Client.Set(ctx, keyPrefix+url, data, c.ttl).Err()
}

func (c *AssetCache) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}
