package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores JSON values under "<namespace>:<key>".
type RedisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache scopes every key to namespace; an empty namespace leaves keys bare.
// Trailing colons are trimmed, so "folio" and "folio:" are the same namespace.
func NewRedisCache(rdb *redis.Client, namespace string) *RedisCache {
	ns := strings.TrimRight(strings.TrimSpace(namespace), ":")
	if ns != "" {
		ns += ":"
	}
	return &RedisCache{rdb: rdb, prefix: ns}
}

func (c *RedisCache) key(k string) string { return c.prefix + k }

func (c *RedisCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	if json.Unmarshal(raw, dst) != nil {
		// undecodable entry, drop it so the next resolve rewrites it
		_ = c.rdb.Del(ctx, c.key(key)).Err()
		return false, nil
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(key), raw, ttl).Err()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, c.key(k))
	}
	return c.rdb.Del(ctx, full...).Err()
}
