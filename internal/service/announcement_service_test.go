package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/service"
	"aqari/internal/validator"
	"aqari/internal/validator/forms"
	"aqari/mocks"
)

func validAnnouncementForm() forms.AnnouncementForm {
	return forms.AnnouncementForm{
		Title:    "Scheduled water shutdown",
		Body:     "Water will be shut off in Tower A on Saturday between 09:00 and 13:00.",
		Audience: domain.AudienceAll,
	}
}

func TestAnnouncementService_Create_StartsAsDraft(t *testing.T) {
	repo := new(mocks.MockAnnouncementRepo)
	svc := service.NewAnnouncementService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Announcement")).Return(nil)

	announcement, err := svc.Create(context.Background(), tenantID, uuid.New(), validAnnouncementForm())
	require.NoError(t, err)
	assert.Equal(t, domain.AnnouncementStatusDraft, announcement.Status)
	assert.Equal(t, tenantID, announcement.TenantID)
}

func TestAnnouncementService_Create_RejectsExpiryBeforePublish(t *testing.T) {
	svc := service.NewAnnouncementService(new(mocks.MockAnnouncementRepo), new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	form := validAnnouncementForm()
	form.PublishAt = validator.Today().AddDate(0, 0, 10).Format(validator.DateLayout)
	form.ExpiresAt = validator.Today().AddDate(0, 0, 5).Format(validator.DateLayout)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "expires_at")
}

func TestAnnouncementService_Publish_BroadcastsToActiveUsers(t *testing.T) {
	repo := new(mocks.MockAnnouncementRepo)
	users := new(mocks.MockUserRepo)
	emails := new(mocks.MockEmailSender)
	svc := service.NewAnnouncementService(repo, users, emails)

	tenantID := uuid.New()
	announcementID := uuid.New()
	draft := &domain.Announcement{
		ID:       announcementID,
		TenantID: tenantID,
		Title:    "Scheduled water shutdown",
		Body:     "Water will be shut off in Tower A on Saturday.",
		Status:   domain.AnnouncementStatusDraft,
	}
	active := domain.User{ID: uuid.New(), Email: "manager@gulf.ae", FullName: "Manager", IsActive: true}
	inactive := domain.User{ID: uuid.New(), Email: "former@gulf.ae", IsActive: false}

	repo.On("GetByID", mock.Anything, tenantID, announcementID).Return(draft, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Announcement")).Return(nil)
	users.On("ListByTenant", mock.Anything, tenantID, 0, 500).Return([]domain.User{active, inactive}, 2, nil)
	emails.On("SendAnnouncement", mock.Anything, "manager@gulf.ae", "Manager",
		draft.Title, draft.Body).Return(nil)

	published, err := svc.Publish(context.Background(), tenantID, announcementID)
	require.NoError(t, err)
	assert.Equal(t, domain.AnnouncementStatusPublished, published.Status)
	require.NotNil(t, published.PublishAt)
	emails.AssertExpectations(t)
	emails.AssertNotCalled(t, "SendAnnouncement", mock.Anything, "former@gulf.ae", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnnouncementService_Publish_KeepsComposerDate(t *testing.T) {
	repo := new(mocks.MockAnnouncementRepo)
	users := new(mocks.MockUserRepo)
	svc := service.NewAnnouncementService(repo, users, new(mocks.MockEmailSender))

	tenantID := uuid.New()
	announcementID := uuid.New()
	scheduled := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	draft := &domain.Announcement{
		ID:        announcementID,
		TenantID:  tenantID,
		Status:    domain.AnnouncementStatusDraft,
		PublishAt: &scheduled,
	}

	repo.On("GetByID", mock.Anything, tenantID, announcementID).Return(draft, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Announcement")).Return(nil)
	users.On("ListByTenant", mock.Anything, tenantID, 0, 500).Return([]domain.User{}, 0, nil)

	published, err := svc.Publish(context.Background(), tenantID, announcementID)
	require.NoError(t, err)
	assert.Equal(t, &scheduled, published.PublishAt)
}

func TestAnnouncementService_Publish_RejectsNonDraft(t *testing.T) {
	repo := new(mocks.MockAnnouncementRepo)
	svc := service.NewAnnouncementService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	announcementID := uuid.New()
	published := &domain.Announcement{ID: announcementID, TenantID: tenantID, Status: domain.AnnouncementStatusPublished}

	repo.On("GetByID", mock.Anything, tenantID, announcementID).Return(published, nil)

	_, err := svc.Publish(context.Background(), tenantID, announcementID)
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotDraft)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAnnouncementService_Update_RejectsNonDraft(t *testing.T) {
	repo := new(mocks.MockAnnouncementRepo)
	svc := service.NewAnnouncementService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	announcementID := uuid.New()
	archived := &domain.Announcement{ID: announcementID, TenantID: tenantID, Status: domain.AnnouncementStatusArchived}

	repo.On("GetByID", mock.Anything, tenantID, announcementID).Return(archived, nil)

	_, err := svc.Update(context.Background(), tenantID, announcementID, validAnnouncementForm())
	assert.ErrorIs(t, err, domain.ErrAnnouncementNotDraft)
}
