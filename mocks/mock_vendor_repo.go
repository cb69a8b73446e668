package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockVendorRepo is a mock implementation of port.VendorRepository.
type MockVendorRepo struct {
	mock.Mock
}

func (m *MockVendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepo) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error) {
	args := m.Called(ctx, tenantID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Vendor, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Vendor), args.Int(1), args.Error(2)
}

func (m *MockVendorRepo) Update(ctx context.Context, vendor *domain.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepo) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	args := m.Called(ctx, tenantID, vendorID)
	return args.Error(0)
}
