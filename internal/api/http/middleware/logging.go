package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
)

// Logging writes one access log record per request.
type Logging struct {
	logger         *logger.Logger
	contextManager model.ContextManager
}

func NewLogging(logger *logger.Logger, contextManager model.ContextManager) *Logging {
	return &Logging{logger: logger, contextManager: contextManager}
}

// Handle logs method, path, status and duration once the handler chain has
// finished. Server errors are logged at error level with the errors the
// handlers attached to the context.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	requestID, _ := l.contextManager.GetRequestIDFromContext(c.Request.Context())
	status := c.Writer.Status()
	args := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	}

	switch {
	case status >= http.StatusInternalServerError:
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}
		l.logger.Error("HTTP request failed", args...)
	case status >= http.StatusBadRequest:
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}
		l.logger.Warn("HTTP request rejected", args...)
	default:
		l.logger.Info("HTTP request completed", args...)
	}
}
