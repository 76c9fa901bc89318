package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"golang.org/x/time/rate"
)

const maxLocalLimiters = 10000

// RateLimit limits requests per client IP per minute. With a Redis client
// the counters are shared by every instance; without one, or while Redis is
// failing, each instance falls back to its own token bucket per IP.
func RateLimit(cfg *config.Config, redisClient *redis.Client, log logrus.FieldLogger) gin.HandlerFunc {
	limit := cfg.Security.RateLimitPerMinute
	local := newLocalLimiter(limit, cfg.Security.RateLimitBurst)

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()

		if redisClient != nil {
			count, reset, err := incrementWindow(c.Request.Context(), redisClient, clientIP)
			if err == nil {
				remaining := limit - int(count)
				if remaining < 0 {
					remaining = 0
				}
				c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
				c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
				c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

				if int(count) > limit {
					tooManyRequests(c, time.Until(reset))
					return
				}
				c.Next()
				return
			}
			log.WithError(err).Warn("rate limit store unavailable, using local limiter")
		}

		if !local.allow(clientIP) {
			tooManyRequests(c, time.Minute/time.Duration(limit))
			return
		}
		c.Next()
	}
}

// incrementWindow counts a hit in the current one-minute window
func incrementWindow(ctx context.Context, rdb *redis.Client, clientIP string) (int64, time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	now := time.Now()
	window := now.Truncate(time.Minute)
	key := fmt.Sprintf("rate_limit:%s:%d", clientIP, window.Unix())

	var incr *redis.IntCmd
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Minute)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}
	return incr.Val(), window.Add(time.Minute), nil
}

func tooManyRequests(c *gin.Context, retryAfter time.Duration) {
	seconds := int(retryAfter.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	c.Header("Retry-After", strconv.Itoa(seconds))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":       "Rate limit exceeded",
		"retry_after": seconds,
	})
}

// localLimiter keeps one token bucket per key
type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newLocalLimiter(perMinute, burst int) *localLimiter {
	if burst < 1 {
		burst = 1
	}
	r := rate.Inf
	if perMinute > 0 {
		r = rate.Every(time.Minute / time.Duration(perMinute))
	}
	return &localLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

func (l *localLimiter) allow(key string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[key]
	if !ok {
		if len(l.limiters) >= maxLocalLimiters {
			l.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
