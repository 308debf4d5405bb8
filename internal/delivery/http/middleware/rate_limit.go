package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-hr-backend/internal/delivery/http/response"
	"go-hr-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Default: client IP
	KeyFunc   func(*gin.Context) string
	KeyPrefix string
	// Reject instead of falling back to memory when Redis errors
	FailClosed bool
}

func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// UploadRateLimitConfig is stricter; image processing and report
// rendering are the expensive endpoints.
func UploadRateLimitConfig(window time.Duration) RateLimitConfig {
	cfg := DefaultRateLimitConfig(10, window)
	cfg.KeyPrefix = "rl:upload:"
	return cfg
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

var rateLimitScript = goredis.NewScript(rateLimitLuaScript)

// RateLimiter counts in Redis when a client is available so limits hold
// across replicas, and falls back to a per-process token bucket.
type RateLimiter struct {
	redis  goredis.Scripter
	config RateLimitConfig

	mu        sync.Mutex
	buckets   map[string]*bucketEntry
	lastSwept time.Time
}

type bucketEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter accepts a nil redis client.
func NewRateLimiter(client goredis.Scripter, config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{
		redis:     client,
		config:    config,
		buckets:   make(map[string]*bucketEntry),
		lastSwept: time.Now(),
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.config.KeyPrefix + rl.config.KeyFunc(c)

		allowed, remaining, resetAt, err := rl.check(c.Request.Context(), key)
		if err != nil {
			logger.Log.Error("rate limit check failed", "request_id", c.GetString("RequestID"), "error", err)
			response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if !allowed {
			retryAfter := int(math.Ceil(time.Until(resetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logger.Log.Warn("rate limit exceeded", "key", key, "path", c.FullPath(), "request_id", c.GetString("RequestID"))
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) check(ctx context.Context, key string) (bool, int, time.Time, error) {
	if rl.redis != nil {
		count, resetAt, err := rl.checkRedis(ctx, key)
		if err == nil {
			return count <= rl.config.Limit, max(0, rl.config.Limit-count), resetAt, nil
		}
		if rl.config.FailClosed {
			return false, 0, time.Time{}, err
		}
		logger.Log.Warn("redis rate limit unavailable, using in-memory fallback", "error", err)
	}
	allowed, remaining, resetAt := rl.checkInMemory(key, time.Now())
	return allowed, remaining, resetAt, nil
}

func (rl *RateLimiter) checkRedis(ctx context.Context, key string) (int, time.Time, error) {
	ttlSeconds := int(rl.config.Window.Seconds())
	result, err := rateLimitScript.Run(ctx, rl.redis, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]any)
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// checkInMemory spreads Limit tokens over Window with a burst of Limit.
func (rl *RateLimiter) checkInMemory(key string, now time.Time) (bool, int, time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastSwept) > 5*time.Minute {
		for k, e := range rl.buckets {
			if now.Sub(e.lastSeen) > rl.config.Window {
				delete(rl.buckets, k)
			}
		}
		rl.lastSwept = now
	}

	every := rl.config.Window / time.Duration(max(1, rl.config.Limit))
	entry, ok := rl.buckets[key]
	if !ok {
		entry = &bucketEntry{limiter: rate.NewLimiter(rate.Every(every), rl.config.Limit)}
		rl.buckets[key] = entry
	}
	entry.lastSeen = now

	allowed := entry.limiter.AllowN(now, 1)
	tokens := entry.limiter.TokensAt(now)
	remaining := max(0, int(tokens))

	// Allowed: when the bucket is full again. Denied: when the next token lands.
	missing := float64(rl.config.Limit) - tokens
	if !allowed {
		missing = 1 - tokens
	}
	resetAt := now.Add(time.Duration(missing * float64(every)))
	return allowed, remaining, resetAt
}
