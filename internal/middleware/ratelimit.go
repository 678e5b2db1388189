package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateCounter is the subset of *redis.Client the limiter needs.
type RateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

func incrWithTTL(ctx context.Context, client RateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_ = client.Expire(ctx, key, ttl).Err()
	}
	return count, nil
}

// RateLimitMiddleware allows limit requests per caller in each fixed window.
// Callers are keyed by identity when authenticated, otherwise by client IP.
// When the counter is unreachable requests are let through and a warning is logged.
func RateLimitMiddleware(client RateCounter, limit int64, window time.Duration) gin.HandlerFunc {
	if window < time.Second {
		window = time.Minute
	}
	windowSeconds := int64(window / time.Second)
	return func(c *gin.Context) {
		caller := "ip:" + c.ClientIP()
		if identity, ok := GetIdentity(c); ok {
			caller = "user:" + identity.UserID
		}
		bucket := time.Now().Unix() / windowSeconds
		key := fmt.Sprintf("ratelimit:%s:%d", caller, bucket)

		count, err := incrWithTTL(c.Request.Context(), client, key, window)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "rate limit counter unavailable", "error", err)
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			c.Header("Retry-After", strconv.FormatInt(windowSeconds, 10))
			apperrors.HandleError(c, apperrors.ErrRateLimited())
			return
		}
		c.Next()
	}
}
