package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aqari/internal/domain"
	"aqari/internal/port"
)

type inspectionRepo struct {
	db *sqlx.DB
}

// NewInspectionRepo creates a new PostgreSQL-backed InspectionRepository.
func NewInspectionRepo(db *sqlx.DB) port.InspectionRepository {
	return &inspectionRepo{db: db}
}

func (r *inspectionRepo) Create(ctx context.Context, inspection *domain.Inspection) error {
	inspection.ID = uuid.New()
	now := time.Now().UTC()
	inspection.CreatedAt = now
	inspection.UpdatedAt = now

	query := `INSERT INTO inspections (id, tenant_id, property_id, requirement_id, scheduled_date,
		inspector, status, result, issues_found, completed_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		inspection.ID, inspection.TenantID, inspection.PropertyID, inspection.RequirementID,
		inspection.ScheduledDate, inspection.Inspector, inspection.Status, inspection.Result,
		inspection.IssuesFound, inspection.CompletedAt, inspection.CreatedBy,
		inspection.CreatedAt, inspection.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inspectionRepo.Create: %w", err)
	}
	return nil
}

func (r *inspectionRepo) GetByID(ctx context.Context, tenantID, inspectionID uuid.UUID) (*domain.Inspection, error) {
	var inspection domain.Inspection
	err := r.db.GetContext(ctx, &inspection,
		"SELECT * FROM inspections WHERE id = $1 AND tenant_id = $2", inspectionID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("inspectionRepo.GetByID: %w", err)
	}
	return &inspection, nil
}

func (r *inspectionRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM inspections WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("inspectionRepo.ListByTenant count: %w", err)
	}

	var inspections []domain.Inspection
	err = r.db.SelectContext(ctx, &inspections,
		"SELECT * FROM inspections WHERE tenant_id = $1 ORDER BY scheduled_date DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("inspectionRepo.ListByTenant: %w", err)
	}
	return inspections, total, nil
}

func (r *inspectionRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM inspections WHERE tenant_id = $1 AND property_id = $2",
		tenantID, propertyID)
	if err != nil {
		return nil, 0, fmt.Errorf("inspectionRepo.ListByProperty count: %w", err)
	}

	var inspections []domain.Inspection
	err = r.db.SelectContext(ctx, &inspections,
		`SELECT * FROM inspections WHERE tenant_id = $1 AND property_id = $2
		 ORDER BY scheduled_date DESC LIMIT $3 OFFSET $4`,
		tenantID, propertyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("inspectionRepo.ListByProperty: %w", err)
	}
	return inspections, total, nil
}

func (r *inspectionRepo) Update(ctx context.Context, inspection *domain.Inspection) error {
	inspection.UpdatedAt = time.Now().UTC()
	query := `UPDATE inspections SET property_id = $1, requirement_id = $2, scheduled_date = $3,
		inspector = $4, status = $5, result = $6, issues_found = $7, completed_at = $8, updated_at = $9
		WHERE id = $10 AND tenant_id = $11`
	result, err := r.db.ExecContext(ctx, query,
		inspection.PropertyID, inspection.RequirementID, inspection.ScheduledDate,
		inspection.Inspector, inspection.Status, inspection.Result, inspection.IssuesFound,
		inspection.CompletedAt, inspection.UpdatedAt, inspection.ID, inspection.TenantID)
	if err != nil {
		return fmt.Errorf("inspectionRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *inspectionRepo) Delete(ctx context.Context, tenantID, inspectionID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM inspections WHERE id = $1 AND tenant_id = $2", inspectionID, tenantID)
	if err != nil {
		return fmt.Errorf("inspectionRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
