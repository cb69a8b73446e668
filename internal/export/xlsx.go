package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"aqari/internal/derive"
	"aqari/internal/domain"
)

// ChequeWorkbook builds an XLSX workbook holding the cheque register.
func ChequeWorkbook(cheques []domain.PostDatedCheque) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Cheques"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := writeRow(f, sheet, 1, toAny(chequeColumns)); err != nil {
		return nil, err
	}
	for i := range cheques {
		if err := writeRow(f, sheet, i+2, toAny(chequeToRow(&cheques[i]))); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// PortfolioWorkbook builds an XLSX workbook with one sheet per dashboard
// report: headline KPIs, the cheque aging buckets, and the per-property
// violation summary.
func PortfolioWorkbook(kpis *domain.PortfolioKpis, aging []domain.PdcAgingRow, violations []domain.ViolationSummaryRow) (*excelize.File, error) {
	f := excelize.NewFile()

	const kpiSheet = "KPIs"
	f.SetSheetName(f.GetSheetName(0), kpiSheet)
	kpiRows := [][]any{
		{"Metric", "Value"},
		{"Properties", kpis.Properties},
		{"Units", kpis.Units},
		{"Open Checkouts", kpis.OpenCheckouts},
		{"Cheques Due Soon", kpis.PdcDueSoon},
		{"Bounced Cheques", kpis.PdcBounced},
		{"Overdue Inspections", kpis.OverdueInspections},
		{"Open Violations", kpis.OpenViolations},
		{"Fines Outstanding", kpis.FinesOutstanding},
	}
	for i, row := range kpiRows {
		if err := writeRow(f, kpiSheet, i+1, row); err != nil {
			return nil, err
		}
	}

	const agingSheet = "Cheque Aging"
	if _, err := f.NewSheet(agingSheet); err != nil {
		return nil, err
	}
	if err := writeRow(f, agingSheet, 1, []any{"Bucket", "Count", "Amount", "Share %"}); err != nil {
		return nil, err
	}
	var agingTotal float64
	for i := range aging {
		agingTotal += aging[i].Amount
	}
	for i := range aging {
		row := []any{aging[i].Bucket, aging[i].Count, aging[i].Amount, derive.Share(aging[i].Amount, agingTotal)}
		if err := writeRow(f, agingSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	const violationSheet = "Violations"
	if _, err := f.NewSheet(violationSheet); err != nil {
		return nil, err
	}
	if err := writeRow(f, violationSheet, 1, toAny(violationColumns)); err != nil {
		return nil, err
	}
	for i := range violations {
		v := &violations[i]
		row := []any{v.PropertyName, v.Violations, v.FinesIssued, v.FinesPaid, v.FinesPending}
		if err := writeRow(f, violationSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", rowNum, err)
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
