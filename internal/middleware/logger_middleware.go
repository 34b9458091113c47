package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduverse/eduverse/internal/pkg/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}
		logRequest(event, c, path, status, time.Since(start))
	}
}

func logRequest(event *zerolog.Event, c *gin.Context, path string, status int, elapsed time.Duration) {
	event.
		Str("method", c.Request.Method).
		Str("path", path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Str("clientIp", c.ClientIP())
	if len(c.Errors) > 0 {
		event.Str("errors", c.Errors.String())
	}
	event.Msg("http request")
}
