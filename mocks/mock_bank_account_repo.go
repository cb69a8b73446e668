package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockBankAccountRepo is a mock implementation of port.BankAccountRepository.
type MockBankAccountRepo struct {
	mock.Mock
}

func (m *MockBankAccountRepo) Create(ctx context.Context, account *domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepo) GetByID(ctx context.Context, tenantID, accountID uuid.UUID) (*domain.BankAccount, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.BankAccount, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepo) Update(ctx context.Context, account *domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepo) SetDefault(ctx context.Context, tenantID, accountID uuid.UUID) error {
	args := m.Called(ctx, tenantID, accountID)
	return args.Error(0)
}

func (m *MockBankAccountRepo) Delete(ctx context.Context, tenantID, accountID uuid.UUID) error {
	args := m.Called(ctx, tenantID, accountID)
	return args.Error(0)
}
