package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tickethub/internal/infrastructure/ratelimit"
	"tickethub/internal/shared/utils"
)

// RateLimit enforces a per-IP limit on the wrapped routes. When the
// limiter backend is unavailable the request is allowed through so a
// redis outage does not take login down with it.
func RateLimit(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
