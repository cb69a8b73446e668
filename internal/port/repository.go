package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// TenantRepository defines the contract for tenant persistence.
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Tenant, int, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository defines the contract for user persistence.
// All query methods include tenantID to enforce tenant isolation at the data layer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, tenantID, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, tenantID, userID uuid.UUID) error
}

// PropertyRepository defines the contract for property persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, tenantID, propertyID uuid.UUID) error
}
