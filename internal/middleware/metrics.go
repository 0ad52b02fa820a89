// File: internal/middleware/metrics.go
package middleware

import (
	"time"

	"bff_create_account/internal/platform/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics.IsHealthCheckEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		m.RequestsInProgress.Inc()
		defer m.RequestsInProgress.Dec()

		c.Next()

		m.RecordRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
