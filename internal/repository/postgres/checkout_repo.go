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

type checkoutRepo struct {
	db *sqlx.DB
}

// NewCheckoutRepo creates a new PostgreSQL-backed CheckoutRepository.
func NewCheckoutRepo(db *sqlx.DB) port.CheckoutRepository {
	return &checkoutRepo{db: db}
}

func (r *checkoutRepo) Create(ctx context.Context, checkout *domain.CheckoutCase) error {
	checkout.ID = uuid.New()
	now := time.Now().UTC()
	checkout.CreatedAt = now
	checkout.UpdatedAt = now

	query := `INSERT INTO checkout_cases (id, tenant_id, property_id, unit_ref, notice_date,
		move_out_date, inspection_date, notice_reason, reason_notes,
		refund_method, refund_bank_name, refund_holder, refund_iban, refund_amount, refund_issued_at,
		created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		checkout.ID, checkout.TenantID, checkout.PropertyID, checkout.UnitRef,
		checkout.NoticeDate, checkout.MoveOutDate, checkout.InspectionDate,
		checkout.NoticeReason, checkout.ReasonNotes,
		checkout.RefundMethod, checkout.RefundBankName, checkout.RefundHolder,
		checkout.RefundIBAN, checkout.RefundAmount, checkout.RefundIssuedAt,
		checkout.CreatedBy, checkout.CreatedAt, checkout.UpdatedAt)
	if err != nil {
		return fmt.Errorf("checkoutRepo.Create: %w", err)
	}
	return nil
}

func (r *checkoutRepo) GetByID(ctx context.Context, tenantID, checkoutID uuid.UUID) (*domain.CheckoutCase, error) {
	var checkout domain.CheckoutCase
	err := r.db.GetContext(ctx, &checkout,
		"SELECT * FROM checkout_cases WHERE id = $1 AND tenant_id = $2", checkoutID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("checkoutRepo.GetByID: %w", err)
	}
	return &checkout, nil
}

func (r *checkoutRepo) GetOpenByUnit(ctx context.Context, tenantID, propertyID uuid.UUID, unitRef string) (*domain.CheckoutCase, error) {
	// open means the deposit refund has not been issued yet
	var checkout domain.CheckoutCase
	err := r.db.GetContext(ctx, &checkout,
		`SELECT * FROM checkout_cases
		 WHERE tenant_id = $1 AND property_id = $2 AND unit_ref = $3 AND refund_issued_at IS NULL
		 ORDER BY created_at DESC LIMIT 1`,
		tenantID, propertyID, unitRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("checkoutRepo.GetOpenByUnit: %w", err)
	}
	return &checkout, nil
}

func (r *checkoutRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CheckoutCase, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM checkout_cases WHERE tenant_id = $1", tenantID)
	if err != nil {
		return nil, 0, fmt.Errorf("checkoutRepo.ListByTenant count: %w", err)
	}

	var checkouts []domain.CheckoutCase
	err = r.db.SelectContext(ctx, &checkouts,
		"SELECT * FROM checkout_cases WHERE tenant_id = $1 ORDER BY move_out_date DESC LIMIT $2 OFFSET $3",
		tenantID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("checkoutRepo.ListByTenant: %w", err)
	}
	return checkouts, total, nil
}

func (r *checkoutRepo) Update(ctx context.Context, checkout *domain.CheckoutCase) error {
	checkout.UpdatedAt = time.Now().UTC()
	query := `UPDATE checkout_cases SET property_id = $1, unit_ref = $2, notice_date = $3,
		move_out_date = $4, inspection_date = $5, notice_reason = $6, reason_notes = $7,
		refund_method = $8, refund_bank_name = $9, refund_holder = $10, refund_iban = $11,
		refund_amount = $12, refund_issued_at = $13, updated_at = $14
		WHERE id = $15 AND tenant_id = $16`
	result, err := r.db.ExecContext(ctx, query,
		checkout.PropertyID, checkout.UnitRef, checkout.NoticeDate,
		checkout.MoveOutDate, checkout.InspectionDate, checkout.NoticeReason, checkout.ReasonNotes,
		checkout.RefundMethod, checkout.RefundBankName, checkout.RefundHolder, checkout.RefundIBAN,
		checkout.RefundAmount, checkout.RefundIssuedAt, checkout.UpdatedAt,
		checkout.ID, checkout.TenantID)
	if err != nil {
		return fmt.Errorf("checkoutRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *checkoutRepo) Delete(ctx context.Context, tenantID, checkoutID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM checkout_cases WHERE id = $1 AND tenant_id = $2", checkoutID, tenantID)
	if err != nil {
		return fmt.Errorf("checkoutRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
