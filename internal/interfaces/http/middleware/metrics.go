package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/pkg/metrics"
)

// Metrics records request count and latency by route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
