package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"minasle/backend/pkg/redis"
	"minasle/backend/pkg/response"
)

// RateLimit bounds requests per client IP on the route it wraps. With rdb
// nil (or Redis down) the limiter is a no-op rather than an outage.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())
		ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}
		if !ok {
			response.Fail(c, http.StatusTooManyRequests, "Muitas requisições, tente novamente em instantes")
			c.Abort()
			return
		}

		c.Next()
	}
}
