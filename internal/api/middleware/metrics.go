package middleware

import (
	"strconv"
	"time"

	"derivatives-case-study/internal/observability"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies by matched route.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
