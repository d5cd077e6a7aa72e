package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"meeting-followup/internal/app/metrics"
)

// Metrics records request counts and latencies per route. The route
// template (not the raw URL) is used as the path label so IDs do not
// explode the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
