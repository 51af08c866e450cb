package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/logger"
	"github.com/costmanager/costmanager-server/internal/model"
)

type User struct {
	userStore model.UserStore
	costStore model.CostStore
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	costStore model.CostStore,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		costStore: costStore,
		logger:    logger,
	}
}

func (s *User) CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if params.ID == "" || params.FirstName == "" || params.LastName == "" ||
		params.Birthday.IsZero() || params.MaritalStatus == "" {
		return model.User{}, apperror.NewErrRequiredFields()
	}

	exists, err := s.userStore.Exists(ctx, params.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		return model.User{}, apperror.NewErrUserAlreadyExists(params.ID)
	}

	user, err := s.userStore.Create(ctx, model.User{
		ID:            params.ID,
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		Birthday:      params.Birthday,
		MaritalStatus: params.MaritalStatus,
	})
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, apperror.NewErrUserAlreadyExists(params.ID)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "user_id", user.ID)

	return user, nil
}

// GetUserSummary returns the user's names and the sum of all their costs.
func (s *User) GetUserSummary(ctx context.Context, id string) (model.UserSummary, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserSummary{}, apperror.NewErrUserNotFound(id)
	}
	if err != nil {
		return model.UserSummary{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	total, err := s.costStore.SumByUserID(ctx, id)
	if err != nil {
		return model.UserSummary{}, fmt.Errorf("failed to sum user costs: %w", err)
	}

	return model.UserSummary{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Total:     total,
	}, nil
}
