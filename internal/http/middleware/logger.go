package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sentinela/gateway/internal/session"
)

func Logger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ev := l.Info()
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		}
		rid := c.GetString(RequestIDHeader)
		s := session.FromContext(c.Request.Context())
		ev.Str("request_id", rid).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("pin", s.PIN).
			Int("status", status).
			Dur("latency", latency).
			Msg("request")
	}
}
