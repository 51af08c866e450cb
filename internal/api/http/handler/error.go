package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costmanager/costmanager-server/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError writes err as {"error": msg}. Client errors keep their own
// status; anything else is a 500 carrying the underlying message. The
// subject of a client error is attached to the context for the access log.
func handleError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		if appErr.Subject != "" {
			_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(appErr.Subject)
		}
		c.AbortWithStatusJSON(appErr.Code, errorResponse{Error: appErr.Message})
		return
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func errInvalidBody() error {
	return apperror.NewErrValidation("Invalid request body")
}
