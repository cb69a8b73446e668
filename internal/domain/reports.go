package domain

import "time"

// ReportFilters narrows aggregation queries by property and date window.
type ReportFilters struct {
	PropertyID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Offset     int
	Limit      int
}

// PortfolioKpis is the dashboard headline block.
type PortfolioKpis struct {
	Properties        int     `db:"properties" json:"properties"`
	Units             int     `db:"units" json:"units"`
	OpenCheckouts     int     `db:"open_checkouts" json:"open_checkouts"`
	PdcDueSoon        int     `db:"pdc_due_soon" json:"pdc_due_soon"`
	PdcBounced        int     `db:"pdc_bounced" json:"pdc_bounced"`
	OverdueInspections int    `db:"overdue_inspections" json:"overdue_inspections"`
	OpenViolations    int     `db:"open_violations" json:"open_violations"`
	FinesOutstanding  float64 `db:"fines_outstanding" json:"fines_outstanding"`
}

// PdcAgingRow buckets cheques by due-date distance for the cashflow report.
type PdcAgingRow struct {
	Bucket string  `db:"bucket" json:"bucket"`
	Count  int     `db:"count" json:"count"`
	Amount float64 `db:"amount" json:"amount"`
}

// ComplianceOverviewRow summarizes inspection outcomes per requirement.
type ComplianceOverviewRow struct {
	RequirementID   string `db:"requirement_id" json:"requirement_id"`
	RequirementName string `db:"requirement_name" json:"requirement_name"`
	Category        string `db:"category" json:"category"`
	Scheduled       int    `db:"scheduled" json:"scheduled"`
	Passed          int    `db:"passed" json:"passed"`
	Failed          int    `db:"failed" json:"failed"`
}

// ViolationSummaryRow aggregates violations and fines per property.
type ViolationSummaryRow struct {
	PropertyID    string  `db:"property_id" json:"property_id"`
	PropertyName  string  `db:"property_name" json:"property_name"`
	Violations    int     `db:"violations" json:"violations"`
	FinesIssued   float64 `db:"fines_issued" json:"fines_issued"`
	FinesPaid     float64 `db:"fines_paid" json:"fines_paid"`
	FinesPending  float64 `db:"fines_pending" json:"fines_pending"`
}
