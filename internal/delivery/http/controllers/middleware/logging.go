package middleware

import (
	"TubeCourse/pkg/logger"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDCtx    = "request_id"
)

// LoggingMiddleware tags each request with an id and logs it once the
// handler chain has finished.
func LoggingMiddleware(log logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDCtx, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		method := c.Request.Method
		path := c.Request.URL.Path
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}
		status := c.Writer.Status()
		reqLog := log.With("request_id", requestID)

		reqLog.Info(fmt.Sprintf("%s %s", method, path),
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)

		for _, ginErr := range c.Errors {
			reqLog.ErrorErr("HTTP request error", ginErr.Err,
				"status", status,
				"method", method,
				"path", path,
			)
		}
	}
}
