package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/logkit/log"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration through the given facade logger.
// Health-check paths are silently skipped.
func RequestLogger(lg log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		msg := fmt.Sprintf("%s %s %d %s client=%s", c.Request.Method, path, status, latency, c.ClientIP())
		if latency > 500*time.Millisecond {
			msg += " slow"
		}

		switch {
		case status >= 500:
			lg.Error(msg)
		case status >= 400:
			lg.Warn(msg)
		default:
			lg.Debug(msg)
		}
	}
}

func isHealthEndpoint(path string) bool {
	healthPaths := []string{
		"/health", "/alive", "/ready", "/metrics",
	}
	for _, hp := range healthPaths {
		if path == hp || (strings.HasPrefix(path, "/api") && strings.HasSuffix(path, hp)) {
			return true
		}
	}
	return false
}
