package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aqari/internal/domain"
	"aqari/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) PortfolioKpis(ctx context.Context, tenantID uuid.UUID, dueSoonDays int) (*domain.PortfolioKpis, error) {
	var kpis domain.PortfolioKpis
	query := `SELECT
		(SELECT COUNT(*) FROM properties WHERE tenant_id = $1) AS properties,
		(SELECT COALESCE(SUM(unit_count), 0) FROM properties WHERE tenant_id = $1) AS units,
		(SELECT COUNT(*) FROM checkout_cases WHERE tenant_id = $1 AND refund_issued_at IS NULL) AS open_checkouts,
		(SELECT COUNT(*) FROM post_dated_cheques WHERE tenant_id = $1 AND status = 'RECEIVED'
			AND due_date <= NOW() + ($2 || ' days')::interval) AS pdc_due_soon,
		(SELECT COUNT(*) FROM post_dated_cheques WHERE tenant_id = $1 AND status = 'BOUNCED') AS pdc_bounced,
		(SELECT COUNT(*) FROM inspections WHERE tenant_id = $1 AND status = 'SCHEDULED'
			AND scheduled_date < NOW()) AS overdue_inspections,
		(SELECT COUNT(*) FROM violations WHERE tenant_id = $1 AND fine_status IN ('PENDING', 'DISPUTED')) AS open_violations,
		(SELECT COALESCE(SUM(fine_amount), 0) FROM violations WHERE tenant_id = $1 AND fine_status = 'PENDING') AS fines_outstanding`
	if err := r.db.GetContext(ctx, &kpis, query, tenantID, dueSoonDays); err != nil {
		return nil, fmt.Errorf("reportRepo.PortfolioKpis: %w", err)
	}
	return &kpis, nil
}

func (r *reportRepo) PdcAging(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.PdcAgingRow, error) {
	where, args := reportWhere("due_date", tenantID, filters)
	query := fmt.Sprintf(`SELECT
		CASE
			WHEN due_date < NOW() THEN 'overdue'
			WHEN due_date < NOW() + INTERVAL '30 days' THEN '0-30'
			WHEN due_date < NOW() + INTERVAL '60 days' THEN '31-60'
			WHEN due_date < NOW() + INTERVAL '90 days' THEN '61-90'
			ELSE '90+'
		END AS bucket,
		COUNT(*) AS count,
		COALESCE(SUM(amount), 0) AS amount
		FROM post_dated_cheques
		WHERE %s AND status IN ('RECEIVED', 'DEPOSITED')
		GROUP BY bucket ORDER BY bucket`, where)

	var rows []domain.PdcAgingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.PdcAging: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) ComplianceOverview(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ComplianceOverviewRow, error) {
	where, args := reportWhere("i.scheduled_date", tenantID, filters)
	where = strings.ReplaceAll(where, "tenant_id", "i.tenant_id")
	where = strings.ReplaceAll(where, "property_id", "i.property_id")
	query := fmt.Sprintf(`SELECT
		cr.id AS requirement_id, cr.name AS requirement_name, cr.category AS category,
		COUNT(*) FILTER (WHERE i.status = 'SCHEDULED') AS scheduled,
		COUNT(*) FILTER (WHERE i.status = 'PASSED') AS passed,
		COUNT(*) FILTER (WHERE i.status = 'FAILED') AS failed
		FROM inspections i
		JOIN compliance_requirements cr ON cr.id = i.requirement_id
		WHERE %s
		GROUP BY cr.id, cr.name, cr.category
		ORDER BY cr.name`, where)

	var rows []domain.ComplianceOverviewRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("reportRepo.ComplianceOverview: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) ViolationSummary(ctx context.Context, tenantID uuid.UUID, filters domain.ReportFilters) ([]domain.ViolationSummaryRow, int, error) {
	where, args := reportWhere("v.violation_date", tenantID, filters)
	where = strings.ReplaceAll(where, "tenant_id", "v.tenant_id")
	where = strings.ReplaceAll(where, "property_id", "v.property_id")

	var total int
	countQuery := fmt.Sprintf(
		`SELECT COUNT(DISTINCT v.property_id) FROM violations v WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ViolationSummary count: %w", err)
	}

	args = append(args, filters.Limit, filters.Offset)
	query := fmt.Sprintf(`SELECT
		v.property_id AS property_id, p.name AS property_name,
		COUNT(*) AS violations,
		COALESCE(SUM(v.fine_amount), 0) AS fines_issued,
		COALESCE(SUM(v.fine_amount) FILTER (WHERE v.fine_status = 'PAID'), 0) AS fines_paid,
		COALESCE(SUM(v.fine_amount) FILTER (WHERE v.fine_status = 'PENDING'), 0) AS fines_pending
		FROM violations v
		JOIN properties p ON p.id = v.property_id
		WHERE %s
		GROUP BY v.property_id, p.name
		ORDER BY violations DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var rows []domain.ViolationSummaryRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("reportRepo.ViolationSummary: %w", err)
	}
	return rows, total, nil
}

// reportWhere builds the shared tenant/property/date filter clause. dateCol
// names the column the date window applies to.
func reportWhere(dateCol string, tenantID uuid.UUID, filters domain.ReportFilters) (string, []any) {
	where := []string{"tenant_id = $1"}
	args := []any{tenantID}

	if filters.PropertyID != nil {
		args = append(args, *filters.PropertyID)
		where = append(where, fmt.Sprintf("property_id = $%d", len(args)))
	}
	if filters.DateFrom != nil {
		args = append(args, *filters.DateFrom)
		where = append(where, fmt.Sprintf("%s >= $%d", dateCol, len(args)))
	}
	if filters.DateTo != nil {
		args = append(args, *filters.DateTo)
		where = append(where, fmt.Sprintf("%s <= $%d", dateCol, len(args)))
	}
	return strings.Join(where, " AND "), args
}
