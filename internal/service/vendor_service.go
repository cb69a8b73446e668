package service

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// VendorService defines the vendor directory contract.
type VendorService interface {
	Create(ctx context.Context, tenantID uuid.UUID, form forms.VendorForm) (*domain.Vendor, error)
	GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Vendor, int, error)
	Update(ctx context.Context, tenantID, vendorID uuid.UUID, form forms.VendorForm) (*domain.Vendor, error)
	Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error
}

type vendorService struct {
	repo port.VendorRepository
}

// NewVendorService creates a new VendorService implementation.
func NewVendorService(repo port.VendorRepository) VendorService {
	return &vendorService{repo: repo}
}

func (s *vendorService) Create(ctx context.Context, tenantID uuid.UUID, form forms.VendorForm) (*domain.Vendor, error) {
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

func (s *vendorService) GetByID(ctx context.Context, tenantID, vendorID uuid.UUID) (*domain.Vendor, error) {
	return s.repo.GetByID(ctx, tenantID, vendorID)
}

func (s *vendorService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Vendor, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *vendorService) Update(ctx context.Context, tenantID, vendorID uuid.UUID, form forms.VendorForm) (*domain.Vendor, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, vendorID)
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

func (s *vendorService) Delete(ctx context.Context, tenantID, vendorID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, vendorID)
}
