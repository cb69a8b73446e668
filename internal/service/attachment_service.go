package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"aqari/internal/config"
	"aqari/internal/domain"
	"aqari/internal/port"
)

// AttachmentUploadInput is the DTO for attachment upload requests. OwnerID and
// OwnerKind tie the file to the record it documents (an inspection, a cheque,
// a vendor licence).
type AttachmentUploadInput struct {
	TenantID   uuid.UUID
	UploadedBy uuid.UUID
	OwnerID    uuid.UUID
	OwnerKind  string
	File       multipart.File
	Header     *multipart.FileHeader
}

// AttachmentService defines the attachment management contract.
type AttachmentService interface {
	Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error)
	GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error)
	ListByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, ownerKind string) ([]domain.Attachment, error)
	GetDownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error)
	Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error
}

type attachmentService struct {
	repo    port.AttachmentRepository
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewAttachmentService creates a new AttachmentService implementation.
func NewAttachmentService(
	repo port.AttachmentRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) AttachmentService {
	return &attachmentService{repo: repo, storage: storage, cfg: cfg}
}

func (s *attachmentService) Upload(ctx context.Context, input AttachmentUploadInput) (*domain.Attachment, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Magic-byte sniff: the extension alone is not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if _, valid := domain.AllowedContentTypes[http.DetectContentType(buf[:n])]; !valid {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	attachmentID := uuid.New()
	s3Key := fmt.Sprintf("tenants/%s/%s/%s/%s",
		input.TenantID, input.OwnerKind, input.OwnerID, attachmentID)
	contentType := domain.FileContentTypes[fileType]

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("attachmentService.Upload: storage upload failed for %s: %v", s3Key, err)
		return nil, domain.ErrUploadFailed
	}

	attachment := &domain.Attachment{
		ID:           attachmentID,
		TenantID:     input.TenantID,
		OwnerID:      input.OwnerID,
		OwnerKind:    input.OwnerKind,
		FileName:     attachmentID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		UploadedBy:   input.UploadedBy,
	}
	if err := s.repo.Create(ctx, attachment); err != nil {
		// The object is orphaned otherwise.
		if delErr := s.storage.Delete(ctx, s.cfg.Bucket, s3Key); delErr != nil {
			log.Printf("attachmentService.Upload: cleanup of %s failed: %v", s3Key, delErr)
		}
		return nil, fmt.Errorf("creating attachment metadata: %w", err)
	}
	return attachment, nil
}

func (s *attachmentService) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	return s.repo.GetByID(ctx, tenantID, attachmentID)
}

func (s *attachmentService) ListByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, ownerKind string) ([]domain.Attachment, error) {
	return s.repo.ListByOwner(ctx, tenantID, ownerID, ownerKind)
}

func (s *attachmentService) GetDownloadURL(ctx context.Context, tenantID, attachmentID uuid.UUID) (string, error) {
	attachment, err := s.repo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, attachment.S3Bucket, attachment.S3Key, s.cfg.PresignExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	attachment, err := s.repo.GetByID(ctx, tenantID, attachmentID)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, attachment.S3Bucket, attachment.S3Key); err != nil {
		log.Printf("attachmentService.Delete: storage delete failed for %s: %v", attachment.S3Key, err)
	}
	return s.repo.Delete(ctx, tenantID, attachmentID)
}
