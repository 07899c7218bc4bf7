package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/butcherynv/posdesk/internal/metrics"
)

// CollectMetrics records request counts and latency per route template.
func CollectMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
