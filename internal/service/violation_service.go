package service

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// ViolationService defines the violation management contract.
type ViolationService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.ViolationForm) (*domain.Violation, error)
	GetByID(ctx context.Context, tenantID, violationID uuid.UUID) (*domain.Violation, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Violation, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Violation, int, error)
	Update(ctx context.Context, tenantID, violationID uuid.UUID, form forms.ViolationForm) (*domain.Violation, error)
	Delete(ctx context.Context, tenantID, violationID uuid.UUID) error
}

type violationService struct {
	repo port.ViolationRepository
}

// NewViolationService creates a new ViolationService implementation.
func NewViolationService(repo port.ViolationRepository) ViolationService {
	return &violationService{repo: repo}
}

func (s *violationService) Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.ViolationForm) (*domain.Violation, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	rec.CreatedBy = userID
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *violationService) GetByID(ctx context.Context, tenantID, violationID uuid.UUID) (*domain.Violation, error) {
	return s.repo.GetByID(ctx, tenantID, violationID)
}

func (s *violationService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Violation, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *violationService) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Violation, int, error) {
	return s.repo.ListByProperty(ctx, tenantID, propertyID, offset, limit)
}

func (s *violationService) Update(ctx context.Context, tenantID, violationID uuid.UUID, form forms.ViolationForm) (*domain.Violation, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, violationID)
	if err != nil {
		return nil, err
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.ID = existing.ID
	rec.TenantID = existing.TenantID
	rec.CreatedBy = existing.CreatedBy
	rec.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *violationService) Delete(ctx context.Context, tenantID, violationID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, violationID)
}
