package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockViolationRepo is a mock implementation of port.ViolationRepository.
type MockViolationRepo struct {
	mock.Mock
}

func (m *MockViolationRepo) Create(ctx context.Context, violation *domain.Violation) error {
	args := m.Called(ctx, violation)
	return args.Error(0)
}

func (m *MockViolationRepo) GetByID(ctx context.Context, tenantID, violationID uuid.UUID) (*domain.Violation, error) {
	args := m.Called(ctx, tenantID, violationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Violation), args.Error(1)
}

func (m *MockViolationRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Violation, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Violation), args.Int(1), args.Error(2)
}

func (m *MockViolationRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Violation, int, error) {
	args := m.Called(ctx, tenantID, propertyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Violation), args.Int(1), args.Error(2)
}

func (m *MockViolationRepo) Update(ctx context.Context, violation *domain.Violation) error {
	args := m.Called(ctx, violation)
	return args.Error(0)
}

func (m *MockViolationRepo) Delete(ctx context.Context, tenantID, violationID uuid.UUID) error {
	args := m.Called(ctx, tenantID, violationID)
	return args.Error(0)
}
