package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
	"github.com/costmanager/costmanager-server/internal/service"
)

// CostService defines business operations for costs and reports.
type CostService interface {
	AddCost(ctx context.Context, params model.CreateCostParams) (model.Cost, error)
	GetReport(ctx context.Context, userID string, period model.ReportPeriod) (model.Report, error)
}

// Cost handles cost creation and the monthly report.
type Cost struct {
	costService CostService
	location    *time.Location
	logger      *logger.Logger
}

// NewCost creates a Cost handler. Timestamps sent without a zone are read
// in location.
func NewCost(costService CostService, location *time.Location, logger *logger.Logger) *Cost {
	if location == nil {
		location = time.Local
	}
	return &Cost{
		costService: costService,
		location:    location,
		logger:      logger,
	}
}

type addCostRequest struct {
	Description flexibleText `json:"description"`
	Category    flexibleText `json:"category"`
	UserID      flexibleID   `json:"userid"`
	Sum         model.Amount `json:"sum"`
	CreatedAt   *string      `json:"created_at"`
}

type costResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UserID      string    `json:"userid"`
	Sum         float64   `json:"sum"`
	CreatedAt   time.Time `json:"created_at"`
}

type reportItemResponse struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

type reportResponse struct {
	UserID string                          `json:"userid"`
	Year   int                             `json:"year"`
	Month  int                             `json:"month"`
	Costs  map[string][]reportItemResponse `json:"costs"`
}

// Add handles POST /api/add.
func (h *Cost) Add(c *gin.Context) {
	var req addCostRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Debug("Cost handler: invalid add request", "error", err)
		handleError(c, errInvalidBody())
		return
	}

	params := model.CreateCostParams{
		Description: string(req.Description),
		Category:    model.Category(req.Category),
		UserID:      string(req.UserID),
		Sum:         req.Sum,
	}
	if req.CreatedAt != nil && *req.CreatedAt != "" {
		createdAt, ok := parseTime(*req.CreatedAt, timestampLayouts, h.location)
		if !ok {
			handleError(c, apperror.NewErrValidation("Invalid created_at"))
			return
		}
		params.CreatedAt = &createdAt
	}

	cost, err := h.costService.AddCost(c.Request.Context(), params)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, costResponse{
		ID:          cost.ID,
		Description: cost.Description,
		Category:    string(cost.Category),
		UserID:      cost.UserID,
		Sum:         cost.Sum,
		CreatedAt:   cost.CreatedAt,
	})
}

// Report handles GET /api/report?id=&year=&month=.
func (h *Cost) Report(c *gin.Context) {
	userID, period, err := reportQuery(c)
	if err != nil {
		handleError(c, err)
		return
	}

	report, err := h.costService.GetReport(c.Request.Context(), userID, period)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

// reportQuery reads id, year and month from the query string.
func reportQuery(c *gin.Context) (string, model.ReportPeriod, error) {
	period, err := service.ParseReportPeriod(c.Query("year"), c.Query("month"))
	if err != nil {
		return "", model.ReportPeriod{}, err
	}
	return c.Query("id"), period, nil
}

func toReportResponse(report model.Report) reportResponse {
	costs := make(map[string][]reportItemResponse, len(report.Costs))
	for category, items := range report.Costs {
		out := make([]reportItemResponse, 0, len(items))
		for _, item := range items {
			out = append(out, reportItemResponse{
				Sum:         item.Sum,
				Description: item.Description,
				Day:         item.Day,
			})
		}
		costs[string(category)] = out
	}

	return reportResponse{
		UserID: report.UserID,
		Year:   report.Year,
		Month:  report.Month,
		Costs:  costs,
	}
}
