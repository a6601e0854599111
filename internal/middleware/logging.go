package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/alimgiray/workhours/pkg/logger"
)

// RequestLogger logs every request with method, path, status and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}

		if c.Writer.Status() >= 500 {
			entry.Error("Request failed")
		} else {
			entry.Info("Request completed")
		}
	}
}
