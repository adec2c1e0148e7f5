package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"deadparty-backend/internal/shared/response"
	"deadparty-backend/pkg/cache"
)

const rateLimitPrefix = "ratelimit:"

// RateLimit applies a fixed-window per-IP limit backed by Redis.
// On Redis errors the request is allowed through.
func RateLimit(store cache.Cache, limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitPrefix + c.ClientIP()

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Msg("rate limit counter unavailable")
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				log.Warn().Err(err).Msg("failed to set rate limit window")
			}
		}

		if count > limit {
			response.TooManyRequests(c, "Too many requests. Please try again later.")
			c.Abort()
			return
		}

		c.Next()
	}
}
