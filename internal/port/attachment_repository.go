package port

import (
	"context"

	"github.com/google/uuid"

	"aqari/internal/domain"
)

// AttachmentRepository defines the contract for attachment metadata
// persistence. The bytes themselves live in object storage.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.Attachment) error
	GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, ownerKind string) ([]domain.Attachment, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}
