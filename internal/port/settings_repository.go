package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// CompanyProfileRepository defines the contract for the single per-tenant
// company profile row.
type CompanyProfileRepository interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*domain.CompanyProfile, error)
	Upsert(ctx context.Context, profile *domain.CompanyProfile) error
}

// BankAccountRepository defines the contract for bank account persistence.
type BankAccountRepository interface {
	Create(ctx context.Context, account *domain.BankAccount) error
	GetByID(ctx context.Context, tenantID, accountID uuid.UUID) (*domain.BankAccount, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.BankAccount, error)
	Update(ctx context.Context, account *domain.BankAccount) error
	SetDefault(ctx context.Context, tenantID, accountID uuid.UUID) error
	Delete(ctx context.Context, tenantID, accountID uuid.UUID) error
}
