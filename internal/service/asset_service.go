package service

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// AssetService defines the asset register contract.
type AssetService interface {
	Create(ctx context.Context, tenantID uuid.UUID, form forms.AssetForm) (*domain.Asset, error)
	GetByID(ctx context.Context, tenantID, assetID uuid.UUID) (*domain.Asset, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Asset, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Asset, int, error)
	Update(ctx context.Context, tenantID, assetID uuid.UUID, form forms.AssetForm) (*domain.Asset, error)
	Delete(ctx context.Context, tenantID, assetID uuid.UUID) error
}

type assetService struct {
	repo port.AssetRepository
}

// NewAssetService creates a new AssetService implementation.
func NewAssetService(repo port.AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) Create(ctx context.Context, tenantID uuid.UUID, form forms.AssetForm) (*domain.Asset, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *assetService) GetByID(ctx context.Context, tenantID, assetID uuid.UUID) (*domain.Asset, error) {
	return s.repo.GetByID(ctx, tenantID, assetID)
}

func (s *assetService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Asset, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *assetService) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Asset, int, error) {
	return s.repo.ListByProperty(ctx, tenantID, propertyID, offset, limit)
}

func (s *assetService) Update(ctx context.Context, tenantID, assetID uuid.UUID, form forms.AssetForm) (*domain.Asset, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, assetID)
	if err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.ID = existing.ID
	rec.TenantID = existing.TenantID
	rec.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *assetService) Delete(ctx context.Context, tenantID, assetID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, assetID)
}
