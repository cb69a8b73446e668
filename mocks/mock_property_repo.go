package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockPropertyRepo is a mock implementation of port.PropertyRepository.
type MockPropertyRepo struct {
	mock.Mock
}

func (m *MockPropertyRepo) Create(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepo) GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, tenantID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Int(1), args.Error(2)
}

func (m *MockPropertyRepo) Update(ctx context.Context, property *domain.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepo) Delete(ctx context.Context, tenantID, propertyID uuid.UUID) error {
	args := m.Called(ctx, tenantID, propertyID)
	return args.Error(0)
}
