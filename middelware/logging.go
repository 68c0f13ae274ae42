package middelware

import (
	"ceam-backend/models"
	"ceam-backend/utils/logger"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger    logger.Logger
	skipPaths []string
}

// NewLoggingMiddleware creates a new logging middleware. Requests whose path ends
// with one of skipPaths are not logged.
func NewLoggingMiddleware(log logger.Logger, skipPaths ...string) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger:    log,
		skipPaths: skipPaths,
	}
}

func (m *LoggingMiddleware) skip(path string) bool {
	for _, p := range m.skipPaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}

// StructuredLogger logs one entry per request
func (m *LoggingMiddleware) StructuredLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if m.skip(path) {
			return
		}

		status := c.Writer.Status()
		fields := logger.Fields{
			"method":     c.Request.Method,
			"path":       path,
			"query":      raw,
			"status":     status,
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		}
		if email, ok := c.Get("user_email"); ok {
			fields["user_email"] = email
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		entry := m.logger.WithFields(fields)
		switch {
		case status >= 500:
			entry.Error("HTTP request completed with error")
		case status >= 400:
			entry.Warn("HTTP request completed with client error")
		default:
			entry.Info("HTTP request completed")
		}
	}
}

// Recovery turns a panic into the generic 500 body
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.RecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ContactResponse{
			Message: models.MsgContactFailed,
			Success: models.Bool(false),
		})
	})
}
