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

type complianceRepo struct {
	db *sqlx.DB
}

// NewComplianceRepo creates a new PostgreSQL-backed ComplianceRepository.
// Applicability is a join table; no rows for a requirement means it applies
// to every property.
func NewComplianceRepo(db *sqlx.DB) port.ComplianceRepository {
	return &complianceRepo{db: db}
}

func (r *complianceRepo) Create(ctx context.Context, req *domain.ComplianceRequirement) error {
	req.ID = uuid.New()
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("complianceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO compliance_requirements (id, tenant_id, name, category, frequency, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := tx.ExecContext(ctx, query,
		req.ID, req.TenantID, req.Name, req.Category, req.Frequency,
		req.Status, req.CreatedBy, req.CreatedAt, req.UpdatedAt); err != nil {
		return fmt.Errorf("complianceRepo.Create: %w", err)
	}
	if err := insertApplicability(ctx, tx, req.ID, req.ApplicableProperties); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("complianceRepo.Create commit: %w", err)
	}
	return nil
}

func insertApplicability(ctx context.Context, tx *sqlx.Tx, reqID uuid.UUID, propertyIDs []uuid.UUID) error {
	for _, pid := range propertyIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO compliance_requirement_properties (requirement_id, property_id) VALUES ($1, $2)",
			reqID, pid); err != nil {
			return fmt.Errorf("complianceRepo applicability insert: %w", err)
		}
	}
	return nil
}

func (r *complianceRepo) GetByID(ctx context.Context, tenantID, reqID uuid.UUID) (*domain.ComplianceRequirement, error) {
	var req domain.ComplianceRequirement
	err := r.db.GetContext(ctx, &req,
		"SELECT * FROM compliance_requirements WHERE id = $1 AND tenant_id = $2", reqID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("complianceRepo.GetByID: %w", err)
	}
	if err := r.loadApplicability(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *complianceRepo) loadApplicability(ctx context.Context, req *domain.ComplianceRequirement) error {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT property_id FROM compliance_requirement_properties WHERE requirement_id = $1", req.ID)
	if err != nil {
		return fmt.Errorf("complianceRepo applicability load: %w", err)
	}
	if len(ids) > 0 {
		req.ApplicableProperties = ids
	}
	return nil
}

func (r *complianceRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ComplianceRequirement, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM compliance_requirements WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("complianceRepo.ListByTenant count: %w", err)
	}

	var reqs []domain.ComplianceRequirement
	err = r.db.SelectContext(ctx, &reqs,
		"SELECT * FROM compliance_requirements WHERE tenant_id = $1 ORDER BY name LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("complianceRepo.ListByTenant: %w", err)
	}
	for i := range reqs {
		if err := r.loadApplicability(ctx, &reqs[i]); err != nil {
			return nil, 0, err
		}
	}
	return reqs, total, nil
}

func (r *complianceRepo) ListForProperty(ctx context.Context, tenantID, propertyID uuid.UUID) ([]domain.ComplianceRequirement, error) {
	// A requirement applies when it has an explicit row for the property or
	// no applicability rows at all.
	var reqs []domain.ComplianceRequirement
	err := r.db.SelectContext(ctx, &reqs,
		`SELECT cr.* FROM compliance_requirements cr
		 WHERE cr.tenant_id = $1 AND cr.status = $2
		   AND (
			EXISTS (SELECT 1 FROM compliance_requirement_properties p
				WHERE p.requirement_id = cr.id AND p.property_id = $3)
			OR NOT EXISTS (SELECT 1 FROM compliance_requirement_properties p
				WHERE p.requirement_id = cr.id)
		   )
		 ORDER BY cr.name`,
		tenantID, domain.ComplianceStatusActive, propertyID)
	if err != nil {
		return nil, fmt.Errorf("complianceRepo.ListForProperty: %w", err)
	}
	return reqs, nil
}

func (r *complianceRepo) Update(ctx context.Context, req *domain.ComplianceRequirement) error {
	req.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("complianceRepo.Update begin: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE compliance_requirements SET name = $1, category = $2, frequency = $3, status = $4, updated_at = $5
		WHERE id = $6 AND tenant_id = $7`
	result, err := tx.ExecContext(ctx, query,
		req.Name, req.Category, req.Frequency, req.Status, req.UpdatedAt, req.ID, req.TenantID)
	if err != nil {
		return fmt.Errorf("complianceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM compliance_requirement_properties WHERE requirement_id = $1", req.ID); err != nil {
		return fmt.Errorf("complianceRepo.Update applicability clear: %w", err)
	}
	if err := insertApplicability(ctx, tx, req.ID, req.ApplicableProperties); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("complianceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *complianceRepo) Delete(ctx context.Context, tenantID, reqID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM compliance_requirements WHERE id = $1 AND tenant_id = $2", reqID, tenantID)
	if err != nil {
		return fmt.Errorf("complianceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
