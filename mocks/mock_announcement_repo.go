package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockAnnouncementRepo is a mock implementation of port.AnnouncementRepository.
type MockAnnouncementRepo struct {
	mock.Mock
}

func (m *MockAnnouncementRepo) Create(ctx context.Context, announcement *domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepo) GetByID(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error) {
	args := m.Called(ctx, tenantID, announcementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Announcement, int, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Announcement), args.Int(1), args.Error(2)
}

func (m *MockAnnouncementRepo) Update(ctx context.Context, announcement *domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}

func (m *MockAnnouncementRepo) Delete(ctx context.Context, tenantID, announcementID uuid.UUID) error {
	args := m.Called(ctx, tenantID, announcementID)
	return args.Error(0)
}
