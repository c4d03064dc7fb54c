package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/config"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 10 // per client IP, per period
)

// RateLimiter caps request rate per client IP on the endpoints it is applied
// to (registration and login, where password hashing makes requests
// expensive). Without redis it is a no-op.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		key := "rate_limit:" + c.ClientIP()
		count, err := config.RedisClient.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis trouble must not take the auth endpoints down.
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(c.Request.Context(), key, rateLimitPeriod)
		}

		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}

		c.Next()
	}
}
