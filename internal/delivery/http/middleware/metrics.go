package middleware

import (
	"strconv"
	"time"

	"go-firesafety-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency per route, method and status code.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
