package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// ComplianceRepository defines the contract for compliance requirement
// persistence, including the property-applicability join rows.
type ComplianceRepository interface {
	Create(ctx context.Context, req *domain.ComplianceRequirement) error
	GetByID(ctx context.Context, tenantID, reqID uuid.UUID) (*domain.ComplianceRequirement, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.ComplianceRequirement, int, error)
	ListForProperty(ctx context.Context, tenantID, propertyID uuid.UUID) ([]domain.ComplianceRequirement, error)
	Update(ctx context.Context, req *domain.ComplianceRequirement) error
	Delete(ctx context.Context, tenantID, reqID uuid.UUID) error
}

// InspectionRepository defines the contract for inspection persistence.
type InspectionRepository interface {
	Create(ctx context.Context, inspection *domain.Inspection) error
	GetByID(ctx context.Context, tenantID, inspectionID uuid.UUID) (*domain.Inspection, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Inspection, int, error)
	Update(ctx context.Context, inspection *domain.Inspection) error
	Delete(ctx context.Context, tenantID, inspectionID uuid.UUID) error
}

// ViolationRepository defines the contract for violation persistence.
type ViolationRepository interface {
	Create(ctx context.Context, violation *domain.Violation) error
	GetByID(ctx context.Context, tenantID, violationID uuid.UUID) (*domain.Violation, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Violation, int, error)
	ListByProperty(ctx context.Context, tenantID, propertyID uuid.UUID, offset, limit int) ([]domain.Violation, int, error)
	Update(ctx context.Context, violation *domain.Violation) error
	Delete(ctx context.Context, tenantID, violationID uuid.UUID) error
}
