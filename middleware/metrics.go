package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sufiyan0000/nike-ecommerce/metrics"
)

// CollectMetrics records a counter and latency sample per request, labelled
// by the route template rather than the raw path to keep cardinality bounded.
func CollectMetrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
