package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware rejects request bodies larger than maxKB kilobytes.
// Oversized bodies surface as read errors inside the handlers.
func BodyLimitMiddleware(maxKB int) gin.HandlerFunc {
	maxBytes := int64(maxKB) * 1024
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			c.Abort()
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
