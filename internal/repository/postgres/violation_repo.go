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

type violationRepo struct {
	db *sqlx.DB
}

// NewViolationRepo creates a new PostgreSQL-backed ViolationRepository.
func NewViolationRepo(db *sqlx.DB) port.ViolationRepository {
	return &violationRepo{db: db}
}

func (r *violationRepo) Create(ctx context.Context, violation *domain.Violation) error {
	violation.ID = uuid.New()
	now := time.Now().UTC()
	violation.CreatedAt = now
	violation.UpdatedAt = now

	query := `INSERT INTO violations (id, tenant_id, property_id, violation_date, description,
		fine_amount, fine_status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		violation.ID, violation.TenantID, violation.PropertyID, violation.ViolationDate,
		violation.Description, violation.FineAmount, violation.FineStatus,
		violation.CreatedBy, violation.CreatedAt, violation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("violationRepo.Create: %w", err)
	}
	return nil
}

func (r *violationRepo) GetByID(ctx context.Context, tenantID, violationID uuid.UUID) (*domain.Violation, error) {
	var violation domain.Violation
	err := r.db.GetContext(ctx, &violation,
		"SELECT * FROM violations WHERE id = $1 AND tenant_id = $2", violationID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("violationRepo.GetByID: %w", err)
	}
	return &violation, nil
}

func (r *violationRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Violation, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM violations WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("violationRepo.ListByTenant count: %w", err)
	}

	var violations []domain.Violation
	err = r.db.SelectContext(ctx, &violations,
		"SELECT * FROM violations WHERE tenant_id = $1 ORDER BY violation_date DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("violationRepo.ListByTenant: %w", err)
	}
	return violations, total, nil
}

func (r *violationRepo) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Violation, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM violations WHERE tenant_id = $1 AND property_id = $2",
		tenantID, propertyID)
	if err != nil {
		return nil, 0, fmt.Errorf("violationRepo.ListByProperty count: %w", err)
	}

	var violations []domain.Violation
	err = r.db.SelectContext(ctx, &violations,
		`SELECT * FROM violations WHERE tenant_id = $1 AND property_id = $2
		 ORDER BY violation_date DESC LIMIT $3 OFFSET $4`,
		tenantID, propertyID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("violationRepo.ListByProperty: %w", err)
	}
	return violations, total, nil
}

func (r *violationRepo) Update(ctx context.Context, violation *domain.Violation) error {
	violation.UpdatedAt = time.Now().UTC()
	query := `UPDATE violations SET property_id = $1, violation_date = $2, description = $3,
		fine_amount = $4, fine_status = $5, updated_at = $6
		WHERE id = $7 AND tenant_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		violation.PropertyID, violation.ViolationDate, violation.Description,
		violation.FineAmount, violation.FineStatus, violation.UpdatedAt,
		violation.ID, violation.TenantID)
	if err != nil {
		return fmt.Errorf("violationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *violationRepo) Delete(ctx context.Context, tenantID, violationID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM violations WHERE id = $1 AND tenant_id = $2", violationID, tenantID)
	if err != nil {
		return fmt.Errorf("violationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
