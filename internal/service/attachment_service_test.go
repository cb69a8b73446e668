package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aqari/internal/config"
	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/service"
	"aqari/mocks"
)

// memFile adapts an in-memory buffer to multipart.File.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newMemFile(content []byte) multipart.File {
	return memFile{bytes.NewReader(content)}
}

func pdfBytes() []byte {
	return append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte{0x20}, 600)...)
}

func testS3Config() *config.S3Config {
	return &config.S3Config{
		Bucket:        "aqari-test",
		MaxFileSizeMB: 10,
		PresignExpiry: 900,
	}
}

func uploadInput(filename string, content []byte) service.AttachmentUploadInput {
	return service.AttachmentUploadInput{
		TenantID:   uuid.New(),
		UploadedBy: uuid.New(),
		OwnerID:    uuid.New(),
		OwnerKind:  "inspection",
		File:       newMemFile(content),
		Header: &multipart.FileHeader{
			Filename: filename,
			Size:     int64(len(content)),
		},
	}
}

func TestAttachmentService_Upload(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)

	input := uploadInput("inspection-report.pdf", pdfBytes())
	attachment, err := svc.Upload(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.FileTypePDF, attachment.FileType)
	assert.Equal(t, "inspection-report.pdf", attachment.OriginalName)
	assert.Equal(t, "aqari-test", attachment.S3Bucket)
	assert.Contains(t, attachment.S3Key, "tenants/"+input.TenantID.String()+"/inspection/")
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestAttachmentService_Upload_RejectsUnsupportedExtension(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(new(mocks.MockAttachmentRepo), storage, testS3Config())

	_, err := svc.Upload(context.Background(), uploadInput("report.exe", pdfBytes()))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestAttachmentService_Upload_RejectsDisguisedContent(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(new(mocks.MockAttachmentRepo), storage, testS3Config())

	// .pdf extension over plain text
	_, err := svc.Upload(context.Background(), uploadInput("report.pdf", []byte("just some text")))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestAttachmentService_Upload_RejectsOversizedFile(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(new(mocks.MockAttachmentRepo), storage, testS3Config())

	input := uploadInput("report.pdf", pdfBytes())
	input.Header.Size = 11 * 1024 * 1024

	_, err := svc.Upload(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestAttachmentService_Upload_CleansUpOnMetadataFailure(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Attachment")).
		Return(errors.New("db down"))
	storage.On("Delete", mock.Anything, "aqari-test", mock.AnythingOfType("string")).Return(nil)

	_, err := svc.Upload(context.Background(), uploadInput("report.pdf", pdfBytes()))
	assert.Error(t, err)
	storage.AssertExpectations(t)
}

func TestAttachmentService_GetDownloadURL(t *testing.T) {
	repo := new(mocks.MockAttachmentRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewAttachmentService(repo, storage, testS3Config())

	tenantID := uuid.New()
	attachmentID := uuid.New()
	attachment := &domain.Attachment{
		ID:       attachmentID,
		TenantID: tenantID,
		S3Bucket: "aqari-test",
		S3Key:    "tenants/x/inspection/y/z",
	}

	repo.On("GetByID", mock.Anything, tenantID, attachmentID).Return(attachment, nil)
	storage.On("GetPresignedURL", mock.Anything, "aqari-test", attachment.S3Key, int64(900)).
		Return("https://s3.example/presigned", nil)

	url, err := svc.GetDownloadURL(context.Background(), tenantID, attachmentID)
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example/presigned", url)
}
