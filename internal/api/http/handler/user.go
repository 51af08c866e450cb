package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
)

// UserService defines business operations for users.
type UserService interface {
	CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error)
	GetUserSummary(ctx context.Context, id string) (model.UserSummary, error)
}

// User handles the /api/users endpoints.
type User struct {
	userService UserService
	logger      *logger.Logger
}

func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type createUserRequest struct {
	ID            flexibleID   `json:"id"`
	FirstName     flexibleText `json:"first_name"`
	LastName      flexibleText `json:"last_name"`
	Birthday      flexibleText `json:"birthday"`
	MaritalStatus flexibleText `json:"marital_status"`
}

type userResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Birthday      string `json:"birthday"`
	MaritalStatus string `json:"marital_status"`
}

type userSummaryResponse struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ID        string  `json:"id"`
	Total     float64 `json:"total"`
}

// Create handles POST /api/users/add.
func (h *User) Create(c *gin.Context) {
	var req createUserRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Debug("User handler: invalid create request", "error", err)
		handleError(c, errInvalidBody())
		return
	}

	params := model.CreateUserParams{
		ID:            string(req.ID),
		FirstName:     string(req.FirstName),
		LastName:      string(req.LastName),
		MaritalStatus: string(req.MaritalStatus),
	}
	if req.Birthday != "" {
		birthday, ok := parseTime(string(req.Birthday), birthdayLayouts, time.UTC)
		if !ok {
			handleError(c, apperror.NewErrValidation("Invalid birthday"))
			return
		}
		params.Birthday = birthday
	}

	user, err := h.userService.CreateUser(c.Request.Context(), params)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Birthday:      user.Birthday.Format(time.DateOnly),
		MaritalStatus: user.MaritalStatus,
	})
}

// Get handles GET /api/users/:id.
func (h *User) Get(c *gin.Context) {
	summary, err := h.userService.GetUserSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, userSummaryResponse{
		FirstName: summary.FirstName,
		LastName:  summary.LastName,
		ID:        summary.ID,
		Total:     summary.Total,
	})
}
