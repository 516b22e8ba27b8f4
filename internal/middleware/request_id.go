package middleware

import (
	"sbu-console/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestID ensures each request has a request ID. It reads X-Request-ID if
// provided; otherwise, it generates a UUID. The value is echoed in the
// response header and tagged onto the request log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("RequestID", rid)
		c.Header("X-Request-ID", rid)

		c.Next()

		config.GetLogger().WithFields(logrus.Fields{
			"request_id": rid,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		}).Info("request")
	}
}
