package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks GET responses as cacheable for the given duration.
// Query endpoints that accept filter parameters serve results that stay
// valid briefly, so clients and intermediaries may reuse them instead of
// hitting the backend again.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Writer.Header().Set("Cache-Control", value)
		}
		c.Next()
	}
}

// NoStore disables caching for the response
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Cache-Control", "no-store")
		c.Next()
	}
}
