package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// AnnouncementService defines the announcement contract. Drafts are editable;
// publishing is one-way and triggers the email broadcast.
type AnnouncementService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.AnnouncementForm) (*domain.Announcement, error)
	GetByID(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Announcement, int, error)
	Update(ctx context.Context, tenantID, announcementID uuid.UUID, form forms.AnnouncementForm) (*domain.Announcement, error)
	Publish(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error)
	Archive(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error)
	Delete(ctx context.Context, tenantID, announcementID uuid.UUID) error
}

type announcementService struct {
	repo   port.AnnouncementRepository
	users  port.UserRepository
	emails port.EmailSender
}

// NewAnnouncementService creates a new AnnouncementService implementation.
func NewAnnouncementService(
	repo port.AnnouncementRepository,
	users port.UserRepository,
	emails port.EmailSender,
) AnnouncementService {
	return &announcementService{repo: repo, users: users, emails: emails}
}

func (s *announcementService) Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.AnnouncementForm) (*domain.Announcement, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	rec.CreatedBy = userID
	rec.Status = domain.AnnouncementStatusDraft
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *announcementService) GetByID(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error) {
	return s.repo.GetByID(ctx, tenantID, announcementID)
}

func (s *announcementService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.Announcement, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *announcementService) Update(ctx context.Context, tenantID, announcementID uuid.UUID, form forms.AnnouncementForm) (*domain.Announcement, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, announcementID)
	if err != nil {
		return nil, err
	}
	if existing.Status != domain.AnnouncementStatusDraft {
		return nil, domain.ErrAnnouncementNotDraft
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.ID = existing.ID
	rec.TenantID = existing.TenantID
	rec.CreatedBy = existing.CreatedBy
	rec.CreatedAt = existing.CreatedAt
	rec.Status = existing.Status
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Publish moves a draft to PUBLISHED, stamps the publish date if the composer
// left it empty, and emails the announcement to the tenant's active users.
func (s *announcementService) Publish(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error) {
	announcement, err := s.repo.GetByID(ctx, tenantID, announcementID)
	if err != nil {
		return nil, err
	}
	if announcement.Status != domain.AnnouncementStatusDraft {
		return nil, domain.ErrAnnouncementNotDraft
	}

	announcement.Status = domain.AnnouncementStatusPublished
	if announcement.PublishAt == nil {
		now := time.Now().UTC()
		announcement.PublishAt = &now
	}
	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, err
	}

	s.broadcast(ctx, tenantID, announcement)
	return announcement, nil
}

func (s *announcementService) Archive(ctx context.Context, tenantID, announcementID uuid.UUID) (*domain.Announcement, error) {
	announcement, err := s.repo.GetByID(ctx, tenantID, announcementID)
	if err != nil {
		return nil, err
	}

	announcement.Status = domain.AnnouncementStatusArchived
	if err := s.repo.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *announcementService) Delete(ctx context.Context, tenantID, announcementID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, announcementID)
}

// broadcast is best-effort: the announcement is published whether or not every
// mailbox accepts it.
func (s *announcementService) broadcast(ctx context.Context, tenantID uuid.UUID, announcement *domain.Announcement) {
	users, _, err := s.users.ListByTenant(ctx, tenantID, 0, 500)
	if err != nil {
		log.Printf("announcementService.broadcast: listing users for tenant %s: %v", tenantID, err)
		return
	}
	for i := range users {
		u := &users[i]
		if !u.IsActive {
			continue
		}
		if err := s.emails.SendAnnouncement(ctx, u.Email, u.FullName, announcement.Title, announcement.Body); err != nil {
			log.Printf("announcementService.broadcast: sending to %s: %v", u.Email, err)
		}
	}
}
