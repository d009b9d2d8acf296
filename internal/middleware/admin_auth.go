package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marke1-web/hw05-final/internal/logs"
	"github.com/marke1-web/hw05-final/internal/user"
)

// AdminOnlyMiddleware protects group administration routes
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		userID := c.GetString("user_id")

		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			logs.LogJSON("WARN", "Non-authenticated user tried admin route", map[string]interface{}{
				"route": route,
			})
			return
		}

		isAdmin, err := user.IsAdmin(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "admin check failed"})
			logs.LogJSON("ERROR", "DB error during admin check", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
			})
			return
		}

		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			logs.LogJSON("WARN", "Non-admin user blocked from admin route", map[string]interface{}{
				"route":  route,
				"userID": userID,
			})
			return
		}

		c.Next()
	}
}
