package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/mkadiri/dentassist-api/pkg/httputil"
)

type RateLimiterConfig struct {
	Rate  rate.Limit
	Burst int
}

func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:  50,
		Burst: 100,
	}
}

// RateLimiter rejects requests above the configured rate with 429.
func RateLimiter(config RateLimiterConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(config.Rate, config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.Response{
				Success: false,
				Error: &httputil.Error{
					Code:    http.StatusTooManyRequests,
					Message: "too many requests",
				},
			})
			return
		}
		c.Next()
	}
}
