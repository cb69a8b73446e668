package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// ReportRepository provides aggregation queries for dashboards and exports.
type ReportRepository interface {
	PortfolioKpis(ctx context.Context, tenantID uuid.UUID, dueSoonDays int) (*domain.PortfolioKpis, error)
	PdcAging(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PdcAgingRow, error)
	ComplianceOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ComplianceOverviewRow, error)
	ViolationSummary(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ViolationSummaryRow, int, error)
}
