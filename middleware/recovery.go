package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Napier40/Akademia-Studenta/utils"
)

// RecoveryMiddleware logs recovered panics with the request that caused
// them and answers with the standard error envelope.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogPanic(recovered, c.Request.Method+" "+c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"result":  nil,
			"error":   "internal server error",
		})
	})
}
