// Package mocks holds testify mocks for the interfaces in package model.
package mocks

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/costmanager/costmanager-server/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func NewUserStore(t testingT) *UserStore {
	m := &UserStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	if fn, ok := args.Get(0).(func(context.Context, model.User) model.User); ok {
		return fn(ctx, user), args.Error(1)
	}
	return args.Get(0).(model.User), args.Error(1)
}

// CostStore is a mock of model.CostStore.
type CostStore struct {
	mock.Mock
}

func NewCostStore(t testingT) *CostStore {
	m := &CostStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CostStore) Create(ctx context.Context, cost model.Cost) (model.Cost, error) {
	args := m.Called(ctx, cost)
	if fn, ok := args.Get(0).(func(context.Context, model.Cost) model.Cost); ok {
		return fn(ctx, cost), args.Error(1)
	}
	return args.Get(0).(model.Cost), args.Error(1)
}

func (m *CostStore) GetByUserIDBetween(ctx context.Context, userID string, from, to time.Time) ([]model.Cost, error) {
	args := m.Called(ctx, userID, from, to)
	costs, _ := args.Get(0).([]model.Cost)
	return costs, args.Error(1)
}

func (m *CostStore) SumByUserID(ctx context.Context, userID string) (float64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(float64), args.Error(1)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func NewStorage(t testingT) *Storage {
	m := &Storage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	args := m.Called(protocol, addr)
	ln, _ := args.Get(0).(net.Listener)
	return ln, args.Error(1)
}

var (
	_ model.UserStore     = (*UserStore)(nil)
	_ model.CostStore     = (*CostStore)(nil)
	_ model.Storage       = (*Storage)(nil)
	_ model.SecurityLayer = (*SecurityLayer)(nil)
)
