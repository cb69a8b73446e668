package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockInspectionRepo is a mock implementation of port.InspectionRepository.
type MockInspectionRepo struct {
	mock.Mock
}

func (m *MockInspectionRepo) Create(ctx context.Context, inspection *domain.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepo) GetByID(ctx context.Context, tenantID, inspectionID uuid.UUID) (*domain.Inspection, error) {
	args := m.Called(ctx, tenantID, inspectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}

func (m *MockInspectionRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Inspection), args.Int(1), args.Error(2)
}

func (m *MockInspectionRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error) {
	args := m.Called(ctx, tenantID, propertyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Inspection), args.Int(1), args.Error(2)
}

func (m *MockInspectionRepo) Update(ctx context.Context, inspection *domain.Inspection) error {
	args := m.Called(ctx, inspection)
	return args.Error(0)
}

func (m *MockInspectionRepo) Delete(ctx context.Context, tenantID, inspectionID uuid.UUID) error {
	args := m.Called(ctx, tenantID, inspectionID)
	return args.Error(0)
}
