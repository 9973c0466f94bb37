package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitScript increments a per-key counter with a rolling window TTL
// and reports whether the caller is still under the limit.
const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// Limiter is a fixed-window rate limiter backed by Redis. It fails open:
// when Redis is unreachable the request is allowed, so an outage of the
// limiter never takes down login.
type Limiter struct {
	client *redis.Client
	script *redis.Script
}

func NewLimiter(client *redis.Client) *Limiter {
	if client == nil {
		return nil
	}
	return &Limiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

// Allow reports whether the caller identified by key may proceed given at
// most limit requests per window.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}

	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
