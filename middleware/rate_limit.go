package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Napier40/Akademia-Studenta/utils"
)

// RateLimitMiddleware throttles public submission endpoints per client IP.
func RateLimitMiddleware(limiter *utils.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "result": nil, "error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
