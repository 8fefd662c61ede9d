package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type CacheConfig struct {
	MaxAge time.Duration
}

// Cache sets Cache-Control headers on GET responses. Mutating methods
// are always marked no-store.
func Cache(config CacheConfig) gin.HandlerFunc {
	seconds := strconv.Itoa(int(config.MaxAge.Seconds()))

	return func(c *gin.Context) {
		// Headers must go out before the handler writes the body.
		if c.Request.Method == http.MethodGet {
			c.Header("Cache-Control", "public, max-age="+seconds)
		} else {
			c.Header("Cache-Control", "no-store")
		}
		c.Next()
	}
}
