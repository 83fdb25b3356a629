package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	apierrors "codeberg.org/wepoker/server/internal/errors"
	"codeberg.org/wepoker/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const redisKeyPrefix = "wepoker:ratelimit"

// holds rate limit configuration
type RateLimitConfig struct {
	// limiter formatted rate, e.g. "300-M"
	Rate string

	// optional, counters stay in process memory when empty
	RedisURL string

	// paths that bypass the limiter (health checks, etc.)
	ExemptPaths []string
}

// checks if a path bypasses the limiter (exact or prefix match)
func (c *RateLimitConfig) IsExemptPath(path string) bool {
	for _, ep := range c.ExemptPaths {
		if path == ep || strings.HasPrefix(path, ep+"/") {
			return true
		}
	}

	return false
}

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	config  RateLimitConfig
	handler gin.HandlerFunc
	redis   *redis.Client
}

func NewRateLimiter(cfg RateLimitConfig) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", cfg.Rate, err)
	}

	rl := &RateLimiter{config: cfg}

	var store limiter.Store
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}

		rl.redis = redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rl.redis.Ping(ctx).Err(); err != nil {
			rl.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}

		store, err = sredis.NewStoreWithOptions(rl.redis, limiter.StoreOptions{
			Prefix:   redisKeyPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			rl.redis.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStore()
	}

	rl.handler = mgin.NewMiddleware(
		limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "ip", c.ClientIP())
			apierrors.TooManyRequests(c, "")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// a broken store must not take the site down
			logger.FromContext(c.Request.Context()).Error("rate limiter failed", "error", err)
			c.Next()
		}),
	)

	return rl, nil
}

// returns a Gin middleware that applies the limiter to non-exempt paths
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.config.IsExemptPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		rl.handler(c)
	}
}

// releases the redis connection, if any
func (rl *RateLimiter) Close() error {
	if rl.redis == nil {
		return nil
	}

	return rl.redis.Close()
}
