// Package ratelimit limits how often a caller may use an expensive endpoint.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisCallTimeout bounds a single limiter round trip.
const redisCallTimeout = 500 * time.Millisecond

var (
	ErrInvalidLimiterConfig = errors.New("rate limiter requires positive limit and window")
	ErrEmptyRedisAddr       = errors.New("rate limiter redis addr is required")
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// Limiter decides whether a keyed request fits its quota.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// FixedWindowLimiter counts requests per key in Redis within fixed,
// wall-clock aligned windows.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration
	prefix string

	client *redis.Client
}

// NewRedisFixedWindowLimiter creates a limiter allowing limit requests per
// window for each key.
func NewRedisFixedWindowLimiter(addr, password, prefix string, limit int, window time.Duration) (*FixedWindowLimiter, error) {
	if limit <= 0 || window < time.Millisecond {
		return nil, ErrInvalidLimiterConfig
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, ErrEmptyRedisAddr
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "soulscribe:ratelimit"
	}

	return &FixedWindowLimiter{
		limit:  limit,
		window: window,
		prefix: prefix,
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     password,
			DialTimeout:  redisCallTimeout,
			ReadTimeout:  redisCallTimeout,
			WriteTimeout: redisCallTimeout,
		}),
	}, nil
}

// Allow increments the counter of key for the current window and reports
// whether it is still within the limit. A Redis failure is returned as an
// error; the caller chooses whether to fail open or closed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	slot := time.Now().UTC().UnixMilli() / windowMs
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	ctx, cancel := context.WithTimeout(ctx, redisCallTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limiter redis call: %w", err)
	}

	return count <= int64(l.limit), nil
}

// Close releases the Redis connection pool.
func (l *FixedWindowLimiter) Close() error {
	return l.client.Close()
}
