package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aqari/internal/domain"
	"aqari/internal/port"
)

type pdcRepo struct {
	db *sqlx.DB
}

// NewPdcRepo creates a new PostgreSQL-backed PdcRepository.
func NewPdcRepo(db *sqlx.DB) port.PdcRepository {
	return &pdcRepo{db: db}
}

func (r *pdcRepo) Create(ctx context.Context, cheque *domain.PostDatedCheque) error {
	cheque.ID = uuid.New()
	now := time.Now().UTC()
	cheque.CreatedAt = now
	cheque.UpdatedAt = now

	query := `INSERT INTO post_dated_cheques (id, tenant_id, property_id, lease_ref, cheque_number,
		bank_name, amount, due_date, status, status_notes, deposited_at, settled_at,
		created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		cheque.ID, cheque.TenantID, cheque.PropertyID, cheque.LeaseRef, cheque.ChequeNumber,
		cheque.BankName, cheque.Amount, cheque.DueDate, cheque.Status, cheque.StatusNotes,
		cheque.DepositedAt, cheque.SettledAt, cheque.CreatedBy, cheque.CreatedAt, cheque.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "cheque_number") {
			return domain.ErrDuplicateCheque
		}
		return fmt.Errorf("pdcRepo.Create: %w", err)
	}
	return nil
}

func (r *pdcRepo) GetByID(ctx context.Context, tenantID, chequeID uuid.UUID) (*domain.PostDatedCheque, error) {
	var cheque domain.PostDatedCheque
	err := r.db.GetContext(ctx, &cheque,
		"SELECT * FROM post_dated_cheques WHERE id = $1 AND tenant_id = $2", chequeID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("pdcRepo.GetByID: %w", err)
	}
	return &cheque, nil
}

func (r *pdcRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, filters port.PdcFilters, offset, limit int) ([]domain.PostDatedCheque, int, error) {
	where := []string{"tenant_id = $1"}
	args := []any{tenantID}

	if filters.PropertyID != nil {
		args = append(args, *filters.PropertyID)
		where = append(where, fmt.Sprintf("property_id = $%d", len(args)))
	}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.DueAfter != nil {
		args = append(args, *filters.DueAfter)
		where = append(where, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if filters.DueBefore != nil {
		args = append(args, *filters.DueBefore)
		where = append(where, fmt.Sprintf("due_date <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM post_dated_cheques WHERE "+cond, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pdcRepo.ListByTenant count: %w", err)
	}

	args = append(args, limit, offset)
	var cheques []domain.PostDatedCheque
	err = r.db.SelectContext(ctx, &cheques,
		fmt.Sprintf("SELECT * FROM post_dated_cheques WHERE %s ORDER BY due_date LIMIT $%d OFFSET $%d",
			cond, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pdcRepo.ListByTenant: %w", err)
	}
	return cheques, total, nil
}

func (r *pdcRepo) Update(ctx context.Context, cheque *domain.PostDatedCheque) error {
	cheque.UpdatedAt = time.Now().UTC()
	query := `UPDATE post_dated_cheques SET property_id = $1, lease_ref = $2, cheque_number = $3,
		bank_name = $4, amount = $5, due_date = $6, status_notes = $7, updated_at = $8
		WHERE id = $9 AND tenant_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		cheque.PropertyID, cheque.LeaseRef, cheque.ChequeNumber, cheque.BankName,
		cheque.Amount, cheque.DueDate, cheque.StatusNotes, cheque.UpdatedAt,
		cheque.ID, cheque.TenantID)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "cheque_number") {
			return domain.ErrDuplicateCheque
		}
		return fmt.Errorf("pdcRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pdcRepo) UpdateStatus(ctx context.Context, tenantID, chequeID uuid.UUID, status domain.PdcStatus, notes string, depositedAt, settledAt *time.Time) error {
	query := `UPDATE post_dated_cheques SET status = $1, status_notes = $2,
		deposited_at = COALESCE($3, deposited_at), settled_at = COALESCE($4, settled_at), updated_at = NOW()
		WHERE id = $5 AND tenant_id = $6`
	result, err := r.db.ExecContext(ctx, query, status, notes, depositedAt, settledAt, chequeID, tenantID)
	if err != nil {
		return fmt.Errorf("pdcRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pdcRepo) Delete(ctx context.Context, tenantID, chequeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM post_dated_cheques WHERE id = $1 AND tenant_id = $2", chequeID, tenantID)
	if err != nil {
		return fmt.Errorf("pdcRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pdcRepo) DueSoon(ctx context.Context, tenantID uuid.UUID, within time.Duration) ([]domain.PostDatedCheque, error) {
	cutoff := time.Now().UTC().Add(within)
	var cheques []domain.PostDatedCheque
	err := r.db.SelectContext(ctx, &cheques,
		`SELECT * FROM post_dated_cheques
		 WHERE tenant_id = $1 AND status = $2 AND due_date <= $3
		 ORDER BY due_date`,
		tenantID, domain.PdcStatusReceived, cutoff)
	if err != nil {
		return nil, fmt.Errorf("pdcRepo.DueSoon: %w", err)
	}
	return cheques, nil
}
