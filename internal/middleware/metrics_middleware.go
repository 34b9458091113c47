package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduverse/eduverse/internal/pkg/metrics"
)

// RequestMetrics records one sample per request into the recorder.
func RequestMetrics(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// Unmatched routes keep the raw path so 404s are still visible.
			path = c.Request.URL.Path
		}
		recorder.Record(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
