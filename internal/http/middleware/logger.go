package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger records one line per request after the handler chain has finished.
// Server-side failures are logged at error level so they stand out in prod.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		requestID := c.GetString(RequestIDHeader)
		status := c.Writer.Status()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", latency,
			"request_id", requestID,
			"ip", c.ClientIP(),
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed", attrs...)
			return
		}
		log.Info("request completed", attrs...)
	}
}
