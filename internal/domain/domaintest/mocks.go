// Package domaintest provides testify mocks of the domain contracts.
package domaintest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/query"
)

type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) Get(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockStore[T]) List(ctx context.Context, q query.Query, page query.Page) ([]T, int64, error) {
	args := m.Called(ctx, q, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]T), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore[T]) Create(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockStore[T]) Save(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *MockStore[T]) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) AccountExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectory) AppointmentExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectory) ProfileFor(ctx context.Context, accountID uint) (*models.Profile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}
