package service

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// ComplianceService defines the compliance requirement management contract.
type ComplianceService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.ComplianceRequirementForm) (*domain.ComplianceRequirement, error)
	GetByID(ctx context.Context, tenantID, reqID uuid.UUID) (*domain.ComplianceRequirement, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ComplianceRequirement, int, error)
	ListForProperty(ctx context.Context, tenantID, propertyID uuid.UUID) ([]domain.ComplianceRequirement, error)
	Update(ctx context.Context, tenantID, reqID uuid.UUID, form forms.ComplianceRequirementForm) (*domain.ComplianceRequirement, error)
	Delete(ctx context.Context, tenantID, reqID uuid.UUID) error
}

type complianceService struct {
	repo port.ComplianceRepository
}

// NewComplianceService creates a new ComplianceService implementation.
func NewComplianceService(repo port.ComplianceRepository) ComplianceService {
	return &complianceService{repo: repo}
}

func (s *complianceService) Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.ComplianceRequirementForm) (*domain.ComplianceRequirement, error) {
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

func (s *complianceService) GetByID(ctx context.Context, tenantID, reqID uuid.UUID) (*domain.ComplianceRequirement, error) {
	return s.repo.GetByID(ctx, tenantID, reqID)
}

func (s *complianceService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ComplianceRequirement, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *complianceService) ListForProperty(ctx context.Context, tenantID, propertyID uuid.UUID) ([]domain.ComplianceRequirement, error) {
	return s.repo.ListForProperty(ctx, tenantID, propertyID)
}

func (s *complianceService) Update(ctx context.Context, tenantID, reqID uuid.UUID, form forms.ComplianceRequirementForm) (*domain.ComplianceRequirement, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, reqID)
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

func (s *complianceService) Delete(ctx context.Context, tenantID, reqID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, reqID)
}
