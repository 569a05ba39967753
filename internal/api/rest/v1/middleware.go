package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestLogger logs every request but the health and metrics probes.
// A request id is taken from the request or generated and echoed in the response.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		path := c.Request.URL.Path
		if path == "/health" || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}
		status := c.Writer.Status()
		entry := fmt.Sprintf("method=%s path=%s status=%d latency=%s ip=%s request_id=%s",
			c.Request.Method, path, status, latency, c.ClientIP(), requestID)

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors.ByType(gin.ErrorTypeAny) {
				log.Error("Request error ", entry, " error=", ginErr.Err)
			}
			return
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Server error ", entry)
		case status >= http.StatusBadRequest:
			log.Warn("Client error ", entry)
		default:
			log.Info("Request completed ", entry)
		}
	}
}
