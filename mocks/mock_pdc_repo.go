package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
	"aqari/internal/port"
)

// MockPdcRepo is a mock implementation of port.PdcRepository.
type MockPdcRepo struct {
	mock.Mock
}

func (m *MockPdcRepo) Create(ctx context.Context, cheque *domain.PostDatedCheque) error {
	args := m.Called(ctx, cheque)
	return args.Error(0)
}

func (m *MockPdcRepo) GetByID(ctx context.Context, tenantID, chequeID uuid.UUID) (*domain.PostDatedCheque, error) {
	args := m.Called(ctx, tenantID, chequeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostDatedCheque), args.Error(1)
}

func (m *MockPdcRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filters port.PdcFilters, offset, limit int) ([]domain.PostDatedCheque, int, error) {
	args := m.Called(ctx, tenantID, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.PostDatedCheque), args.Int(1), args.Error(2)
}

func (m *MockPdcRepo) Update(ctx context.Context, cheque *domain.PostDatedCheque) error {
	args := m.Called(ctx, cheque)
	return args.Error(0)
}

func (m *MockPdcRepo) UpdateStatus(ctx context.Context, tenantID, chequeID uuid.UUID, status domain.PdcStatus, notes string, depositedAt, settledAt *time.Time) error {
	args := m.Called(ctx, tenantID, chequeID, status, notes, depositedAt, settledAt)
	return args.Error(0)
}

func (m *MockPdcRepo) Delete(ctx context.Context, tenantID, chequeID uuid.UUID) error {
	args := m.Called(ctx, tenantID, chequeID)
	return args.Error(0)
}

func (m *MockPdcRepo) DueSoon(ctx context.Context, tenantID uuid.UUID, within time.Duration) ([]domain.PostDatedCheque, error) {
	args := m.Called(ctx, tenantID, within)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PostDatedCheque), args.Error(1)
}
