package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockAttachmentRepo is a mock implementation of port.AttachmentRepository.
type MockAttachmentRepo struct {
	mock.Mock
}

func (m *MockAttachmentRepo) Create(ctx context.Context, attachment *domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepo) GetByID(ctx context.Context, tenantID, attachmentID uuid.UUID) (*domain.Attachment, error) {
	args := m.Called(ctx, tenantID, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) ListByOwner(ctx context.Context, tenantID, ownerID uuid.UUID, ownerKind string) ([]domain.Attachment, error) {
	args := m.Called(ctx, tenantID, ownerID, ownerKind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepo) Delete(ctx context.Context, tenantID, attachmentID uuid.UUID) error {
	args := m.Called(ctx, tenantID, attachmentID)
	return args.Error(0)
}
