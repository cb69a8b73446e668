package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// PdcFilters narrows cheque listings.
type PdcFilters struct {
	PropertyID *uuid.UUID
	Status     *domain.PdcStatus
	DueBefore  *time.Time
	DueAfter   *time.Time
}

// PdcRepository defines the contract for post-dated cheque persistence.
type PdcRepository interface {
	Create(ctx context.Context, cheque *domain.PostDatedCheque) error
	GetByID(ctx context.Context, tenantID, chequeID uuid.UUID) (*domain.PostDatedCheque, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, filters PdcFilters, offset, limit int) ([]domain.PostDatedCheque, int, error)
	Update(ctx context.Context, cheque *domain.PostDatedCheque) error
	UpdateStatus(ctx context.Context, tenantID, chequeID uuid.UUID, status domain.PdcStatus, notes string, depositedAt, settledAt *time.Time) error
	Delete(ctx context.Context, tenantID, chequeID uuid.UUID) error
	DueSoon(ctx context.Context, tenantID uuid.UUID, within time.Duration) ([]domain.PostDatedCheque, error)
}
