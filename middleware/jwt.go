package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Napier40/Akademia-Studenta/utils"
)

// JWTAuthMiddleware guards the admin route group. Tokens revoked by
// logout live in a Redis blacklist until they expire. Everything behind
// this middleware may assume an already-authorized admin caller.
func JWTAuthMiddleware(rdb *redis.Client, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing or invalid Authorization header"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if rdb != nil {
			if _, err := rdb.Get(context.Background(), "blacklist:"+token).Result(); err == nil {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token has been revoked"})
				c.Abort()
				return
			}
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			c.Abort()
			return
		}
		role, _ := claims["role"].(string)
		if role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token payload"})
			c.Abort()
			return
		}
		if username, ok := claims["username"].(string); ok {
			c.Set("admin_username", username)
		}
		c.Next()
	}
}
