package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockCompanyProfileRepo is a mock implementation of port.CompanyProfileRepository.
type MockCompanyProfileRepo struct {
	mock.Mock
}

func (m *MockCompanyProfileRepo) Get(ctx context.Context, tenantID uuid.UUID) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}

func (m *MockCompanyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}
