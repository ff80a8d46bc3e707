package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// RequestLogger registra cada requisição no logger estruturado
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= 500:
			logger.Error("request completed", args...)
		case status >= 400:
			logger.Warn("request completed", args...)
		default:
			logger.Info("request completed", args...)
		}
	}
}
