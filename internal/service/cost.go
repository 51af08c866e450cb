package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
)

type Cost struct {
	costStore model.CostStore
	userStore model.UserStore
	location  *time.Location
	logger    *logger.Logger
	now       func() time.Time
}

// NewCost creates a Cost service. Reports are computed in location; nil
// means the process local time zone.
func NewCost(
	costStore model.CostStore,
	userStore model.UserStore,
	location *time.Location,
	logger *logger.Logger,
) *Cost {
	if location == nil {
		location = time.Local
	}
	return &Cost{
		costStore: costStore,
		userStore: userStore,
		location:  location,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Cost) AddCost(ctx context.Context, params model.CreateCostParams) (model.Cost, error) {
	if err := validateCost(params); err != nil {
		return model.Cost{}, err
	}

	// No transaction spans this check and the insert below.
	exists, err := s.userStore.Exists(ctx, params.UserID)
	if err != nil {
		return model.Cost{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return model.Cost{}, apperror.NewErrUserNotFound(params.UserID)
	}

	createdAt := s.now()
	if params.CreatedAt != nil && !params.CreatedAt.IsZero() {
		createdAt = *params.CreatedAt
	}

	cost, err := s.costStore.Create(ctx, model.Cost{
		ID:          uuid.New(),
		UserID:      params.UserID,
		Description: params.Description,
		Category:    params.Category,
		Sum:         params.Sum.Value,
		CreatedAt:   createdAt,
	})
	if err != nil {
		return model.Cost{}, fmt.Errorf("failed to save cost: %w", err)
	}

	s.logger.Info("cost added",
		"cost_id", cost.ID,
		"user_id", cost.UserID,
		"category", cost.Category)

	return cost, nil
}

func validateCost(params model.CreateCostParams) error {
	if params.Description == "" || params.Category == "" || params.UserID == "" || params.Sum.Missing() {
		return apperror.NewErrRequiredFields()
	}
	if !params.Category.Valid() {
		return apperror.NewErrValidation("Invalid category")
	}
	if !params.Sum.Numeric || params.Sum.Value <= 0 {
		return apperror.NewErrValidation("Sum must be a positive number")
	}
	return nil
}

// GetReport returns the user's costs for the month grouped by category.
func (s *Cost) GetReport(ctx context.Context, userID string, period model.ReportPeriod) (model.Report, error) {
	if err := validatePeriod(period); err != nil {
		return model.Report{}, err
	}

	exists, err := s.userStore.Exists(ctx, userID)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return model.Report{}, apperror.NewErrUserNotFound(userID)
	}

	from, to := MonthRange(period, s.location)
	costs, err := s.costStore.GetByUserIDBetween(ctx, userID, from, to)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to get costs for report: %w", err)
	}

	s.logger.Debug("report built",
		"user_id", userID,
		"year", period.Year,
		"month", period.Month,
		"costs", len(costs))

	return BuildReport(userID, period, costs, s.location), nil
}
