package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger logs every request once it has been handled. Pointer moves arrive at frame
// rate and are logged at debug level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.FullPath(),
			"session":   c.Param("id"),
			"status":    status,
			"duration":  time.Since(start),
			"client_ip": c.ClientIP(),
		})

		switch {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		case c.FullPath() == "/api/v1/sessions/:id/pointer/move":
			entry.Debug("Request processed")
		default:
			entry.Info("Request processed")
		}
	}
}
