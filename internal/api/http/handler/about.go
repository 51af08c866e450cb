package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/costmanager/costmanager-server/internal/model"
)

type maintainerResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ID        string `json:"id"`
	Email     string `json:"email"`
}

// About handles GET /api/about.
func About(c *gin.Context) {
	out := make([]maintainerResponse, 0, len(model.Maintainers))
	for _, m := range model.Maintainers {
		out = append(out, maintainerResponse{
			FirstName: m.FirstName,
			LastName:  m.LastName,
			ID:        m.ID,
			Email:     m.Email,
		})
	}
	c.JSON(http.StatusOK, out)
}
