package service

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// PropertyService defines the property management contract. Writes take the
// submitted form and reject it with a *domain.ValidationError before any
// persistence happens.
type PropertyService interface {
	Create(ctx context.Context, tenantID uuid.UUID, form forms.PropertyForm) (*domain.Property, error)
	GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, tenantID, propertyID uuid.UUID, form forms.PropertyForm) (*domain.Property, error)
	Delete(ctx context.Context, tenantID, propertyID uuid.UUID) error
}

type propertyService struct {
	repo port.PropertyRepository
}

// NewPropertyService creates a new PropertyService implementation.
func NewPropertyService(repo port.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) Create(ctx context.Context, tenantID uuid.UUID, form forms.PropertyForm) (*domain.Property, error) {
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

func (s *propertyService) GetByID(ctx context.Context, tenantID, propertyID uuid.UUID) (*domain.Property, error) {
	return s.repo.GetByID(ctx, tenantID, propertyID)
}

func (s *propertyService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *propertyService) Update(ctx context.Context, tenantID, propertyID uuid.UUID, form forms.PropertyForm) (*domain.Property, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, propertyID)
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

func (s *propertyService) Delete(ctx context.Context, tenantID, propertyID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, propertyID)
}
