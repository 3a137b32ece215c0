package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storage-rental/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis connects and pings the cache.
func InitRedis(config utils.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return rdb, nil
}

// Cache is a small JSON read-through cache over redis. Misses and redis
// failures are non-fatal; callers fall back to the store.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func New(rdb *redis.Client, ttlSeconds int, log *zap.Logger) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
		log: log.With(zap.String("component", "cache")),
	}
}

// GetJSON loads key into dest. Returns false on miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("Cache get failed", zap.Error(err), zap.String("key", key))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache unmarshal failed", zap.Error(err), zap.String("key", key))
		return false
	}

	return true
}

// SetJSON stores value under key with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.Error(err), zap.String("key", key))
	}
}

// Delete drops keys, used on facility upsert to invalidate stale snapshots.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache delete failed", zap.Error(err), zap.Strings("keys", keys))
	}
}
