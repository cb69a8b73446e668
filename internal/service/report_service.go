package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"aqari/internal/domain"
	"aqari/internal/export"
	"aqari/internal/port"
)

// chequeExportCap bounds a single export so a runaway register cannot hold a
// connection open indefinitely.
const chequeExportCap = 10000

// ReportService provides dashboard aggregations and file exports over the
// tenant's portfolio.
type ReportService interface {
	PortfolioKpis(ctx context.Context, tenantID uuid.UUID) (*domain.PortfolioKpis, error)
	PdcAging(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PdcAgingRow, error)
	ComplianceOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ComplianceOverviewRow, error)
	ViolationSummary(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ViolationSummaryRow, int, error)
	ExportChequesCSV(ctx context.Context, w io.Writer, tenantID uuid.UUID, filters port.PdcFilters) error
	ExportComplianceCSV(ctx context.Context, w io.Writer, tenantID uuid.UUID, filters domain.ReportFilters) error
	ExportViolationsCSV(ctx context.Context, w io.Writer, tenantID uuid.UUID, filters domain.ReportFilters) error
	ExportChequesXLSX(ctx context.Context, tenantID uuid.UUID, filters port.PdcFilters) (*excelize.File, error)
	ExportPortfolioXLSX(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*excelize.File, error)
}

type reportService struct {
	reportRepo  port.ReportRepository
	pdcRepo     port.PdcRepository
	dueSoonDays int
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository, pdcRepo port.PdcRepository, dueSoonDays int) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		pdcRepo:     pdcRepo,
		dueSoonDays: dueSoonDays,
	}
}

func (s *reportService) PortfolioKpis(ctx context.Context, tenantID uuid.UUID) (*domain.PortfolioKpis, error) {
	return s.reportRepo.PortfolioKpis(ctx, tenantID, s.dueSoonDays)
}

func (s *reportService) PdcAging(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PdcAgingRow, error) {
	return s.reportRepo.PdcAging(ctx, tenantID, filters)
}

func (s *reportService) ComplianceOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ComplianceOverviewRow, error) {
	return s.reportRepo.ComplianceOverview(ctx, tenantID, filters)
}

func (s *reportService) ViolationSummary(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ViolationSummaryRow, int, error) {
	return s.reportRepo.ViolationSummary(ctx, tenantID, filters)
}

// ExportChequesCSV streams the filtered cheque register as BOM-prefixed CSV.
func (s *reportService) ExportChequesCSV(ctx context.Context, w io.Writer, tenantID uuid.UUID, filters port.PdcFilters) error {
	cheques, _, err := s.pdcRepo.ListByTenant(ctx, tenantID, filters, 0, chequeExportCap)
	if err != nil {
		return err
	}

	if _, err := w.Write(export.BOM); err != nil {
		return err
	}
	writer := export.NewWriter(w)
	if err := writer.WriteChequeHeader(); err != nil {
		return err
	}
	if err := writer.WriteCheques(cheques); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// ExportComplianceCSV streams the compliance overview as BOM-prefixed CSV.
func (s *reportService) ExportComplianceCSV(ctx context.Context, w io.Writer, tenantID uuid.UUID, filters domain.ReportFilters) error {
	rows, err := s.reportRepo.ComplianceOverview(ctx, tenantID, filters)
	if err != nil {
		return err
	}

	if _, err := w.Write(export.BOM); err != nil {
		return err
	}
	writer := export.NewWriter(w)
	if err := writer.WriteComplianceHeader(); err != nil {
		return err
	}
	if err := writer.WriteComplianceOverview(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// ExportViolationsCSV streams the per-property violation summary as
// BOM-prefixed CSV.
func (s *reportService) ExportViolationsCSV(ctx context.Context, w io.Writer, tenantID uuid.UUID, filters domain.ReportFilters) error {
	filters.Offset, filters.Limit = 0, chequeExportCap
	rows, _, err := s.reportRepo.ViolationSummary(ctx, tenantID, filters)
	if err != nil {
		return err
	}

	if _, err := w.Write(export.BOM); err != nil {
		return err
	}
	writer := export.NewWriter(w)
	if err := writer.WriteViolationHeader(); err != nil {
		return err
	}
	if err := writer.WriteViolationSummary(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func (s *reportService) ExportChequesXLSX(ctx context.Context, tenantID uuid.UUID, filters port.PdcFilters) (*excelize.File, error) {
	cheques, _, err := s.pdcRepo.ListByTenant(ctx, tenantID, filters, 0, chequeExportCap)
	if err != nil {
		return nil, err
	}
	return export.ChequeWorkbook(cheques)
}

// ExportPortfolioXLSX builds the multi-sheet dashboard workbook: KPIs, cheque
// aging, and the per-property violation summary.
func (s *reportService) ExportPortfolioXLSX(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) (*excelize.File, error) {
	kpis, err := s.reportRepo.PortfolioKpis(ctx, tenantID, s.dueSoonDays)
	if err != nil {
		return nil, err
	}
	aging, err := s.reportRepo.PdcAging(ctx, tenantID, filters)
	if err != nil {
		return nil, err
	}
	violations, _, err := s.reportRepo.ViolationSummary(ctx, tenantID, filters)
	if err != nil {
		return nil, err
	}
	return export.PortfolioWorkbook(kpis, aging, violations)
}
