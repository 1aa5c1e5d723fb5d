package server

import (
	"bid-sniper/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request with timing, at a level matching
// the response class
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}

	switch status := c.Writer.Status(); {
	case status >= 500:
		utils.Error("HTTP Request", fields)
	case status >= 400:
		utils.Warn("HTTP Request", fields)
	default:
		utils.Info("HTTP Request", fields)
	}
}
