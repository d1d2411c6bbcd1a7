package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIdentity trusts the user id header injected by the upstream gateway
// after token validation and puts it on the request context. The service
// itself never sees credentials.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
