package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/costmanager/costmanager-server/internal/apperror"
	"github.com/costmanager/costmanager-server/internal/mocks"
	"github.com/costmanager/costmanager-server/internal/model"
	"github.com/costmanager/costmanager-server/internal/testutil"
)

func TestUserService_CreateUser(t *testing.T) {
	birthday := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	valid := model.CreateUserParams{
		ID:            "123",
		FirstName:     "Dana",
		LastName:      "Levi",
		Birthday:      birthday,
		MaritalStatus: "single",
	}

	tests := []struct {
		name      string
		params    model.CreateUserParams
		mockSetup func(*mocks.UserStore)
		wantErr   error
	}{
		{
			name:   "successful creation",
			params: valid,
			mockSetup: func(users *mocks.UserStore) {
				users.On("Exists", mock.Anything, "123").Return(false, nil)
				users.On("Create", mock.Anything, model.User{
					ID:            "123",
					FirstName:     "Dana",
					LastName:      "Levi",
					Birthday:      birthday,
					MaritalStatus: "single",
				}).Return(func(_ context.Context, u model.User) model.User { return u }, nil)
			},
		},
		{
			name:      "missing first name",
			params:    model.CreateUserParams{ID: "123", LastName: "Levi", Birthday: birthday, MaritalStatus: "single"},
			mockSetup: func(*mocks.UserStore) {},
			wantErr:   apperror.NewErrRequiredFields(),
		},
		{
			name:      "missing birthday",
			params:    model.CreateUserParams{ID: "123", FirstName: "Dana", LastName: "Levi", MaritalStatus: "single"},
			mockSetup: func(*mocks.UserStore) {},
			wantErr:   apperror.NewErrRequiredFields(),
		},
		{
			name:      "missing marital status",
			params:    model.CreateUserParams{ID: "123", FirstName: "Dana", LastName: "Levi", Birthday: birthday},
			mockSetup: func(*mocks.UserStore) {},
			wantErr:   apperror.NewErrRequiredFields(),
		},
		{
			name:   "duplicate id",
			params: valid,
			mockSetup: func(users *mocks.UserStore) {
				users.On("Exists", mock.Anything, "123").Return(true, nil)
			},
			wantErr: apperror.NewErrUserAlreadyExists("123"),
		},
		{
			name:   "concurrent insert hits unique violation",
			params: valid,
			mockSetup: func(users *mocks.UserStore) {
				users.On("Exists", mock.Anything, "123").Return(false, nil)
				users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrAlreadyExists)
			},
			wantErr: apperror.NewErrUserAlreadyExists("123"),
		},
		{
			name:   "store error",
			params: valid,
			mockSetup: func(users *mocks.UserStore) {
				users.On("Exists", mock.Anything, "123").Return(false, nil)
				users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, errors.New("disk full"))
			},
			wantErr: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewUserStore(t)
			costs := mocks.NewCostStore(t)
			tt.mockSetup(users)

			svc := NewUser(users, costs, testutil.MakeNoopLogger())

			got, err := svc.CreateUser(context.Background(), tt.params)
			if tt.wantErr != nil {
				require.Error(t, err)
				var appErr *apperror.Error
				if errors.As(tt.wantErr, &appErr) {
					assert.ErrorIs(t, err, appErr)
					assert.Equal(t, appErr.Message, err.Error())
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.ID, got.ID)
			assert.Equal(t, tt.params.FirstName, got.FirstName)
			assert.True(t, birthday.Equal(got.Birthday))
		})
	}
}

func TestUserService_CreateUserTwice(t *testing.T) {
	svc := NewUser(newMemoryUserStore(), &memoryCostStore{}, testutil.MakeNoopLogger())
	params := model.CreateUserParams{
		ID:            "u1",
		FirstName:     "Dana",
		LastName:      "Levi",
		Birthday:      time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		MaritalStatus: "married",
	}

	_, err := svc.CreateUser(context.Background(), params)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), params)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.NewErrUserAlreadyExists("u1"))
}

func TestUserService_GetUserSummary(t *testing.T) {
	user := model.User{ID: "u1", FirstName: "Dana", LastName: "Levi"}

	tests := []struct {
		name      string
		mockSetup func(*mocks.UserStore, *mocks.CostStore)
		want      model.UserSummary
		wantErr   error
	}{
		{
			name: "no costs",
			mockSetup: func(users *mocks.UserStore, costs *mocks.CostStore) {
				users.On("GetByID", mock.Anything, "u1").Return(user, nil)
				costs.On("SumByUserID", mock.Anything, "u1").Return(0.0, nil)
			},
			want: model.UserSummary{ID: "u1", FirstName: "Dana", LastName: "Levi", Total: 0},
		},
		{
			name: "with costs",
			mockSetup: func(users *mocks.UserStore, costs *mocks.CostStore) {
				users.On("GetByID", mock.Anything, "u1").Return(user, nil)
				costs.On("SumByUserID", mock.Anything, "u1").Return(142.5, nil)
			},
			want: model.UserSummary{ID: "u1", FirstName: "Dana", LastName: "Levi", Total: 142.5},
		},
		{
			name: "user not found",
			mockSetup: func(users *mocks.UserStore, _ *mocks.CostStore) {
				users.On("GetByID", mock.Anything, "u1").Return(model.User{}, model.ErrNotFound)
			},
			wantErr: apperror.NewErrUserNotFound("u1"),
		},
		{
			name: "sum error",
			mockSetup: func(users *mocks.UserStore, costs *mocks.CostStore) {
				users.On("GetByID", mock.Anything, "u1").Return(user, nil)
				costs.On("SumByUserID", mock.Anything, "u1").Return(0.0, errors.New("timeout"))
			},
			wantErr: errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewUserStore(t)
			costs := mocks.NewCostStore(t)
			tt.mockSetup(users, costs)

			svc := NewUser(users, costs, testutil.MakeNoopLogger())

			got, err := svc.GetUserSummary(context.Background(), "u1")
			if tt.wantErr != nil {
				require.Error(t, err)
				var appErr *apperror.Error
				if errors.As(tt.wantErr, &appErr) {
					assert.ErrorIs(t, err, appErr)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_SummaryTotalsAllCosts(t *testing.T) {
	users := newMemoryUserStore("u1", "u2")
	costs := &memoryCostStore{}
	costSvc := NewCost(costs, users, time.UTC, testutil.MakeNoopLogger())
	userSvc := NewUser(users, costs, testutil.MakeNoopLogger())

	sums := []float64{10, 20.25, 5}
	for i, sum := range sums {
		createdAt := time.Date(2024, time.Month(i+1), 10, 0, 0, 0, 0, time.UTC)
		_, err := costSvc.AddCost(context.Background(), model.CreateCostParams{
			Description: "item",
			Category:    model.CategoryHousing,
			UserID:      "u1",
			Sum:         model.NewAmount(sum),
			CreatedAt:   &createdAt,
		})
		require.NoError(t, err)
	}

	summary, err := userSvc.GetUserSummary(context.Background(), "u1")
	require.NoError(t, err)
	assert.InDelta(t, 35.25, summary.Total, 1e-9)

	summary, err = userSvc.GetUserSummary(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.Total)
}
