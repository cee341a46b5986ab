package ratelimit

import (
	"fmt"
	"net/http"
	"strings"

	"courtside/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP rate limits keyed by route class
func Middleware(rateLimiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			// Fail open: a broken limiter must not take bookings down
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			response.RespondJSON(c, "error", http.StatusTooManyRequests,
				"Rate limit exceeded", nil, map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(path string) RateLimitType {
	switch {
	// Write endpoints on the booking flow get the strictest bucket
	case strings.Contains(path, "/bookings"):
		return RateLimitTypeBooking

	// Admin management endpoints
	case strings.Contains(path, "/blocks"),
		strings.Contains(path, "/pricing"),
		strings.Contains(path, "/promos"):
		return RateLimitTypeAdmin

	// Public browsing endpoints
	case strings.Contains(path, "/courts"):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}
