package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"aqari/internal/domain"
	"aqari/internal/port"
)

type attachmentRepo struct {
	db *sqlx.DB
}

// NewAttachmentRepo creates a new PostgreSQL-backed AttachmentRepository.
func NewAttachmentRepo(db *sqlx.DB) port.AttachmentRepository {
	return &attachmentRepo{db: db}
}

func (r *attachmentRepo) Create(ctx context.Context, attachment *domain.Attachment) error {
	attachment.ID = uuid.New()
	attachment.CreatedAt = time.Now().UTC()

	query := `INSERT INTO attachments (id, tenant_id, owner_id, owner_kind, file_name, original_name,
		file_type, file_size, s3_bucket, s3_key, content_type, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		attachment.ID, attachment.TenantID, attachment.OwnerID, attachment.OwnerKind,
		attachment.FileName, attachment.OriginalName, attachment.FileType, attachment.FileSize,
		attachment.S3Bucket, attachment.S3Key, attachment.ContentType,
		attachment.UploadedBy, attachment.CreatedAt)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}
	return nil
}

func (r *attachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	var attachment domain.Attachment
	err := r.db.GetContext(ctx, &attachment,
		"SELECT * FROM attachments WHERE id = $1 AND tenant_id = $2", attachmentID, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}
	return &attachment, nil
}

func (r *attachmentRepo) ListByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, ownerKind string) ([]domain.Attachment, error) {
	var attachments []domain.Attachment
	err := r.db.SelectContext(ctx, &attachments,
		`SELECT * FROM attachments WHERE tenant_id = $1 AND owner_id = $2 AND owner_kind = $3
		 ORDER BY created_at DESC`,
		tenantID, ownerID, ownerKind)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByOwner: %w", err)
	}
	return attachments, nil
}

func (r *attachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM attachments WHERE id = $1 AND tenant_id = $2", attachmentID, tenantID)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
