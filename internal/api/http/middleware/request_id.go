package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/costmanager/costmanager-server/internal/model"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID reuses the client's X-Request-ID or generates one, stores it in
// the request context and echoes it on the response.
type RequestID struct {
	contextManager model.ContextManager
}

func NewRequestID(contextManager model.ContextManager) *RequestID {
	return &RequestID{contextManager: contextManager}
}

func (m *RequestID) Handle(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" || len(id) > maxRequestIDLength {
		id = uuid.NewString()
	}

	ctx := m.contextManager.SetRequestIDToContext(c.Request.Context(), id)
	c.Request = c.Request.WithContext(ctx)
	c.Header(RequestIDHeader, id)

	c.Next()
}
