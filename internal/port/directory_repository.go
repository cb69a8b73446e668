package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// VendorRepository defines the contract for vendor persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Vendor, int, error)
	Update(ctx context.Context, vendor *domain.Vendor) error
	Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error
}

// AssetRepository defines the contract for asset persistence.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, tenantID, assetID uuid.UUID) (*domain.Asset, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Asset, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Asset, int, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, tenantID, assetID uuid.UUID) error
}

// AnnouncementRepository defines the contract for announcement persistence.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	GetByID(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Announcement, int, error)
	Update(ctx context.Context, announcement *domain.Announcement) error
	Delete(ctx context.Context, tenantID, announcementID uuid.UUID) error
}
