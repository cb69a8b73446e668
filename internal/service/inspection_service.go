package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// InspectionService defines the inspection management contract. Creation uses
// the create-mode schema (scheduled date must not be in the past); edits use
// the looser edit-mode schema so historical records stay editable.
type InspectionService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.InspectionForm) (*domain.Inspection, error)
	GetByID(ctx context.Context, tenantID, inspectionID uuid.UUID) (*domain.Inspection, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error)
	Update(ctx context.Context, tenantID, inspectionID uuid.UUID, form forms.InspectionForm) (*domain.Inspection, error)
	Delete(ctx context.Context, tenantID, inspectionID uuid.UUID) error
}

type inspectionService struct {
	repo port.InspectionRepository
}

// NewInspectionService creates a new InspectionService implementation.
func NewInspectionService(repo port.InspectionRepository) InspectionService {
	return &inspectionService{repo: repo}
}

func (s *inspectionService) Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.InspectionForm) (*domain.Inspection, error) {
	if err := form.ValidateCreate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	rec.CreatedBy = userID
	rec.CompletedAt = form.CompletedAt(time.Now())
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *inspectionService) GetByID(ctx context.Context, tenantID, inspectionID uuid.UUID) (*domain.Inspection, error) {
	return s.repo.GetByID(ctx, tenantID, inspectionID)
}

func (s *inspectionService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *inspectionService) ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error) {
	return s.repo.ListByProperty(ctx, tenantID, propertyID, offset, limit)
}

func (s *inspectionService) Update(ctx context.Context, tenantID, inspectionID uuid.UUID, form forms.InspectionForm) (*domain.Inspection, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, inspectionID)
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
	// The completion timestamp is set once, when the inspection first
	// reaches a terminal status.
	rec.CompletedAt = existing.CompletedAt
	if rec.CompletedAt == nil {
		rec.CompletedAt = form.CompletedAt(time.Now())
	}
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *inspectionService) Delete(ctx context.Context, tenantID, inspectionID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, inspectionID)
}
