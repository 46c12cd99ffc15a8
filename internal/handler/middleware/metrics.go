package middleware

import (
	"strconv"
	"time"

	"sponsor-portal/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics labels by route template so record ids do not explode cardinality
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
