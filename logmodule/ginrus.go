package logmodule

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Ginrus returns a gin middleware that logs requests through logrus with a
// fixed prefix field.
func Ginrus(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logrus.WithFields(logrus.Fields{
			"prefix":     prefix,
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start),
			"user-agent": c.Request.UserAgent(),
		}).Info("handled request")
	}
}
