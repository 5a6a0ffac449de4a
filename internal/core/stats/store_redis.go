// Copyright (c) 2026 SelfHost Hub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Redis implementation of the stats [Cache].
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/selfhosthub/internal/platform/constants"
)

// ErrCacheMiss is returned when no cached aggregate is present.
var ErrCacheMiss = errors.New("stats: cache miss")

// RedisCache implements [Cache] using a single JSON value with a TTL.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed stats Cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get retrieves the cached aggregate.

Returns:
  - *Stats: The cached value
  - error: ErrCacheMiss when absent or expired, or connectivity errors
*/
func (cache *RedisCache) Get(context context.Context) (*Stats, error) {
	payload, err := cache.client.Get(context, constants.RedisKeyStats).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis_stats_get_failed: %w", err)
	}

	stats := &Stats{}
	if err := json.Unmarshal(payload, stats); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, ErrCacheMiss
	}

	return stats, nil
}

// Set stores the aggregate with the standard TTL.
func (cache *RedisCache) Set(context context.Context, stats Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("redis_stats_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, constants.RedisKeyStats, payload, constants.StatsCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_stats_set_failed: %w", err)
	}

	return nil
}
