// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rate

import (
	"context"
	"fmt"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

var _ LimiterInterface = (*RedisLimiter)(nil)

// RedisLimiter is a fixed-window counter on INCR + EXPIRE, shared across
// service instances.
type RedisLimiter struct {
	client *rdb.Client
	prefix string
	max    int64
	window time.Duration
}

func NewRedisLimiter(client *rdb.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "rl:",
		max:    int64(max),
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	winStart := time.Now().UTC().Truncate(l.window)
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, winStart.Unix())

	hits, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit counter failed: %w", err)
	}

	// set expiry on first hit
	if hits == 1 {
		_ = l.client.Expire(ctx, redisKey, l.window).Err()
	}

	if hits > l.max {
		ttl, _ := l.client.TTL(ctx, redisKey).Result()
		if ttl < 0 {
			ttl = l.window
		}
		return Result{Allowed: false, Remaining: 0, RetryAfter: ttl}, nil
	}

	return Result{Allowed: true, Remaining: int(l.max - hits)}, nil
}
