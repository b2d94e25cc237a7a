package ratelimit

import (
	"context"
	"fmt"
	"log"
	"time"

	"dossier_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:ratelimit:"

// ConnectRedis returns nil when addr is empty or the server does not answer,
// which disables rate limiting.
func ConnectRedis(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		log.Printf("[ratelimit] REDIS_ADDR not set, tracking rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[ratelimit] redis unreachable addr=%s err=%v, tracking rate limiting disabled", addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Printf("[ratelimit] redis connected addr=%s", addr)
	return rdb
}

// RedisRateLimiter is a fixed-window counter per caller key.
type RedisRateLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

var _ interfaces.IRateLimiter = (*RedisRateLimiter)(nil)

func NewRedisRateLimiter(rdb *redis.Client, limit int64, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{rdb: rdb, limit: limit, window: window}
}

// Allow counts one attempt for key. A nil client or a zero limit allows everything.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l == nil || l.rdb == nil || l.limit <= 0 {
		return true, nil
	}

	k := keyPrefix + key
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", k, err)
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", k, err)
		}
	}

	return n <= l.limit, nil
}
