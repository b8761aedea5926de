package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomasen/realip"

	"github.com/harentsoaR/tutormatch-api/internal/logger"
)

// AccessLog logs one record per request once the handler chain is done.
func AccessLog(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", GetRequestID(c),
			"ip", realip.FromRequest(c.Request),
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"size", c.Writer.Size(),
			"duration_ms", time.Since(start).Milliseconds(),
		}

		switch {
		case status >= 500:
			l.Error("access", args...)
		case status >= 400:
			l.Warn("access", args...)
		default:
			l.Info("access", args...)
		}
	}
}
