package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockComplianceRepo is a mock implementation of port.ComplianceRepository.
type MockComplianceRepo struct {
	mock.Mock
}

func (m *MockComplianceRepo) Create(ctx context.Context, req *domain.ComplianceRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockComplianceRepo) GetByID(ctx context.Context, tenantID, reqID uuid.UUID) (*domain.ComplianceRequirement, error) {
	args := m.Called(ctx, tenantID, reqID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComplianceRequirement), args.Error(1)
}

func (m *MockComplianceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ComplianceRequirement, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ComplianceRequirement), args.Int(1), args.Error(2)
}

func (m *MockComplianceRepo) ListForProperty(ctx context.Context, tenantID, propertyID uuid.UUID) ([]domain.ComplianceRequirement, error) {
	args := m.Called(ctx, tenantID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplianceRequirement), args.Error(1)
}

func (m *MockComplianceRepo) Update(ctx context.Context, req *domain.ComplianceRequirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockComplianceRepo) Delete(ctx context.Context, tenantID, reqID uuid.UUID) error {
	args := m.Called(ctx, tenantID, reqID)
	return args.Error(0)
}
