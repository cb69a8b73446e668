package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) PortfolioKpis(ctx context.Context, tenantID uuid.UUID, dueSoonDays int) (*domain.PortfolioKpis, error) {
	args := m.Called(ctx, tenantID, dueSoonDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioKpis), args.Error(1)
}

func (m *MockReportRepo) PdcAging(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PdcAgingRow, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PdcAgingRow), args.Error(1)
}

func (m *MockReportRepo) ComplianceOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ComplianceOverviewRow, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplianceOverviewRow), args.Error(1)
}

func (m *MockReportRepo) ViolationSummary(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ViolationSummaryRow, int, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ViolationSummaryRow), args.Int(1), args.Error(2)
}
