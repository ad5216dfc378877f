package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const settingsKeyPrefix = "swaptool:settings:"

// SettingsCache keeps boolean settings in Redis so the auto-approve flag,
// read on every request creation, does not cost a Postgres round trip each
// time. Any cache failure degrades to a miss; the settings table stays the
// source of truth.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSettingsCache wraps the shared Redis connection. A nil client yields a
// cache that always misses.
func NewSettingsCache(r *Redis, ttl time.Duration, logger *zap.Logger) *SettingsCache {
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &SettingsCache{client: client, ttl: ttl, logger: logger}
}

// GetBool reports the cached value and whether the key was present.
func (c *SettingsCache) GetBool(ctx context.Context, key string) (bool, bool) {
	if c == nil || c.client == nil {
		return false, false
	}

	raw, err := c.client.Get(ctx, settingsKeyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("settings cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false, false
	}
	return raw == "1", true
}

// SetBool stores the value with the configured TTL.
func (c *SettingsCache) SetBool(ctx context.Context, key string, value bool) {
	if c == nil || c.client == nil {
		return
	}

	raw := "0"
	if value {
		raw = "1"
	}
	if err := c.client.Set(ctx, settingsKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("settings cache write failed", zap.String("key", key), zap.Error(err))
	}
}
