package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// CheckoutRepository defines the contract for checkout case persistence.
type CheckoutRepository interface {
	Create(ctx context.Context, checkout *domain.CheckoutCase) error
	GetByID(ctx context.Context, tenantID, checkoutID uuid.UUID) (*domain.CheckoutCase, error)
	GetOpenByUnit(ctx context.Context, tenantID, propertyID uuid.UUID, unitRef string) (*domain.CheckoutCase, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CheckoutCase, int, error)
	Update(ctx context.Context, checkout *domain.CheckoutCase) error
	Delete(ctx context.Context, tenantID, checkoutID uuid.UUID) error
}
