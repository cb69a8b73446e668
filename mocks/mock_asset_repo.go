package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockAssetRepo is a mock implementation of port.AssetRepository.
type MockAssetRepo struct {
	mock.Mock
}

func (m *MockAssetRepo) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepo) GetByID(ctx context.Context, tenantID, assetID uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, tenantID, assetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Asset, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Asset), args.Int(1), args.Error(2)
}

func (m *MockAssetRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Asset, int, error) {
	args := m.Called(ctx, tenantID, propertyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Asset), args.Int(1), args.Error(2)
}

func (m *MockAssetRepo) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepo) Delete(ctx context.Context, tenantID, assetID uuid.UUID) error {
	args := m.Called(ctx, tenantID, assetID)
	return args.Error(0)
}
