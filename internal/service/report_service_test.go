package service_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/service"
	"aqari/mocks"
)

func TestReportService_PortfolioKpis_UsesConfiguredWindow(t *testing.T) {
	reports := new(mocks.MockReportRepo)
	svc := service.NewReportService(reports, new(mocks.MockPdcRepo), 14)

	tenantID := uuid.New()
	kpis := &domain.PortfolioKpis{Properties: 3, PdcDueSoon: 5}
	reports.On("PortfolioKpis", mock.Anything, tenantID, 14).Return(kpis, nil)

	got, err := svc.PortfolioKpis(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.PdcDueSoon)
	reports.AssertExpectations(t)
}

func TestReportService_ExportChequesCSV(t *testing.T) {
	pdcRepo := new(mocks.MockPdcRepo)
	svc := service.NewReportService(new(mocks.MockReportRepo), pdcRepo, 7)

	tenantID := uuid.New()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	cheques := []domain.PostDatedCheque{
		{
			ID:           uuid.New(),
			TenantID:     tenantID,
			ChequeNumber: "100045",
			BankName:     "Emirates NBD",
			LeaseRef:     "L-2026-001",
			Amount:       42500,
			DueDate:      due,
			Status:       domain.PdcStatusReceived,
		},
	}
	pdcRepo.On("ListByTenant", mock.Anything, tenantID, port.PdcFilters{}, 0, 10000).
		Return(cheques, 1, nil)

	var buf bytes.Buffer
	err := svc.ExportChequesCSV(context.Background(), &buf, tenantID, port.PdcFilters{})
	require.NoError(t, err)

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	lines := strings.Split(strings.TrimSpace(string(out[3:])), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Cheque Number")
	assert.Contains(t, lines[1], "100045")
	assert.Contains(t, lines[1], "42500.00")
	assert.Contains(t, lines[1], "2026-03-01")
	assert.Contains(t, lines[1], "RECEIVED")
}

func TestReportService_ExportChequesXLSX(t *testing.T) {
	pdcRepo := new(mocks.MockPdcRepo)
	svc := service.NewReportService(new(mocks.MockReportRepo), pdcRepo, 7)

	tenantID := uuid.New()
	cheques := []domain.PostDatedCheque{
		{ChequeNumber: "100045", BankName: "Emirates NBD", Amount: 42500,
			DueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Status: domain.PdcStatusDeposited},
	}
	pdcRepo.On("ListByTenant", mock.Anything, tenantID, port.PdcFilters{}, 0, 10000).
		Return(cheques, 1, nil)

	f, err := svc.ExportChequesXLSX(context.Background(), tenantID, port.PdcFilters{})
	require.NoError(t, err)

	rows, err := f.GetRows("Cheques")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "100045", rows[1][0])
}

func TestReportService_ExportPortfolioXLSX(t *testing.T) {
	reports := new(mocks.MockReportRepo)
	svc := service.NewReportService(reports, new(mocks.MockPdcRepo), 7)

	tenantID := uuid.New()
	filters := domain.ReportFilters{}
	kpis := &domain.PortfolioKpis{Properties: 3, Units: 120}
	aging := []domain.PdcAgingRow{{Bucket: "0-30", Count: 4, Amount: 170000}}
	violations := []domain.ViolationSummaryRow{{PropertyName: "Marina Plaza", Violations: 2, FinesIssued: 5000}}

	reports.On("PortfolioKpis", mock.Anything, tenantID, 7).Return(kpis, nil)
	reports.On("PdcAging", mock.Anything, tenantID, filters).Return(aging, nil)
	reports.On("ViolationSummary", mock.Anything, tenantID, filters).Return(violations, 1, nil)

	f, err := svc.ExportPortfolioXLSX(context.Background(), tenantID, filters)
	require.NoError(t, err)

	kpiRows, err := f.GetRows("KPIs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Properties", "3"}, kpiRows[1][:2])

	agingRows, err := f.GetRows("Cheque Aging")
	require.NoError(t, err)
	require.Len(t, agingRows, 2)
	assert.Equal(t, "0-30", agingRows[1][0])
}

func TestReportService_ExportComplianceCSV(t *testing.T) {
	reports := new(mocks.MockReportRepo)
	svc := service.NewReportService(reports, new(mocks.MockPdcRepo), 7)

	tenantID := uuid.New()
	rows := []domain.ComplianceOverviewRow{
		{RequirementName: "Elevator Inspection", Category: "ELEVATOR", Scheduled: 2, Passed: 2},
	}
	reports.On("ComplianceOverview", mock.Anything, tenantID, domain.ReportFilters{}).
		Return(rows, nil)

	var buf bytes.Buffer
	err := svc.ExportComplianceCSV(context.Background(), &buf, tenantID, domain.ReportFilters{})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xef\xbb\xbf"))
	assert.Contains(t, out, "Elevator Inspection")
	assert.Contains(t, out, "ELEVATOR")
	reports.AssertExpectations(t)
}

func TestReportService_ExportViolationsCSV_CapsWindow(t *testing.T) {
	reports := new(mocks.MockReportRepo)
	svc := service.NewReportService(reports, new(mocks.MockPdcRepo), 7)

	tenantID := uuid.New()
	rows := []domain.ViolationSummaryRow{
		{PropertyName: "Marina Heights", Violations: 2, FinesIssued: 8500},
	}
	reports.On("ViolationSummary", mock.Anything, tenantID, domain.ReportFilters{Limit: 10000}).
		Return(rows, 1, nil)

	var buf bytes.Buffer
	err := svc.ExportViolationsCSV(context.Background(), &buf, tenantID, domain.ReportFilters{Offset: 40, Limit: 20})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Marina Heights")
	reports.AssertExpectations(t)
}
