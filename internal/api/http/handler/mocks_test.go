package handler

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/costmanager/costmanager-server/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) GetUserSummary(ctx context.Context, id string) (model.UserSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.UserSummary), args.Error(1)
}

type MockCostService struct {
	mock.Mock
}

func (m *MockCostService) AddCost(ctx context.Context, params model.CreateCostParams) (model.Cost, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Cost), args.Error(1)
}

func (m *MockCostService) GetReport(ctx context.Context, userID string, period model.ReportPeriod) (model.Report, error) {
	args := m.Called(ctx, userID, period)
	return args.Get(0).(model.Report), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportReport(ctx context.Context, userID string, period model.ReportPeriod) (*bytes.Buffer, error) {
	args := m.Called(ctx, userID, period)
	buf, _ := args.Get(0).(*bytes.Buffer)
	return buf, args.Error(1)
}

func (m *MockExportService) ArchiveReport(ctx context.Context, userID string, period model.ReportPeriod) (string, error) {
	args := m.Called(ctx, userID, period)
	return args.String(0), args.Error(1)
}

func (m *MockExportService) GetArchivedReport(ctx context.Context, userID string, period model.ReportPeriod) (io.ReadCloser, error) {
	args := m.Called(ctx, userID, period)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// serve runs a single request through a fresh engine with h mounted at
// method and route.
func serve(method, route, target, body string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, route, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

