package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockCheckoutRepo is a mock implementation of port.CheckoutRepository.
type MockCheckoutRepo struct {
	mock.Mock
}

func (m *MockCheckoutRepo) Create(ctx context.Context, checkout *domain.CheckoutCase) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepo) GetByID(ctx context.Context, tenantID, checkoutID uuid.UUID) (*domain.CheckoutCase, error) {
	args := m.Called(ctx, tenantID, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutCase), args.Error(1)
}

func (m *MockCheckoutRepo) GetOpenByUnit(ctx context.Context, tenantID, propertyID uuid.UUID, unitRef string) (*domain.CheckoutCase, error) {
	args := m.Called(ctx, tenantID, propertyID, unitRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CheckoutCase), args.Error(1)
}

func (m *MockCheckoutRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CheckoutCase, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CheckoutCase), args.Int(1), args.Error(2)
}

func (m *MockCheckoutRepo) Update(ctx context.Context, checkout *domain.CheckoutCase) error {
	args := m.Called(ctx, checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepo) Delete(ctx context.Context, tenantID, checkoutID uuid.UUID) error {
	args := m.Called(ctx, tenantID, checkoutID)
	return args.Error(0)
}
