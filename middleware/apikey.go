package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyRequired gates a route behind the shared secret passed as the
// api-key query parameter.
func APIKeyRequired(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.Query("api-key")
		if subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"Forbidden": "Sorry, that's not allowed. Make sure you have the correct api_key."},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORS allows browser frontends on any origin to call the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
