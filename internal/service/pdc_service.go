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

// TransitionPdcInput is the DTO for moving a cheque to its next status.
type TransitionPdcInput struct {
	Status domain.PdcStatus `json:"status" binding:"required"`
	Notes  string           `json:"notes"`
}

// PdcService defines the post-dated cheque management contract. Status
// changes go through Transition, which enforces the cheque lifecycle; Update
// only touches the descriptive fields.
type PdcService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.PdcForm) (*domain.PostDatedCheque, error)
	GetByID(ctx context.Context, tenantID, chequeID uuid.UUID) (*domain.PostDatedCheque, error)
	List(ctx context.Context, tenantID uuid.UUID, filters port.PdcFilters, offset, limit int) ([]domain.PostDatedCheque, int, error)
	Update(ctx context.Context, tenantID, chequeID uuid.UUID, form forms.PdcForm) (*domain.PostDatedCheque, error)
	Transition(ctx context.Context, tenantID, chequeID uuid.UUID, input TransitionPdcInput) (*domain.PostDatedCheque, error)
	NextStatuses(ctx context.Context, tenantID, chequeID uuid.UUID) ([]domain.PdcStatus, error)
	Delete(ctx context.Context, tenantID, chequeID uuid.UUID) error
	SendDueReminders(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type pdcService struct {
	repo        port.PdcRepository
	users       port.UserRepository
	emails      port.EmailSender
	dueSoonDays int
}

// NewPdcService creates a new PdcService implementation.
func NewPdcService(
	repo port.PdcRepository,
	users port.UserRepository,
	emails port.EmailSender,
	dueSoonDays int,
) PdcService {
	return &pdcService{
		repo:        repo,
		users:       users,
		emails:      emails,
		dueSoonDays: dueSoonDays,
	}
}

func (s *pdcService) Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.PdcForm) (*domain.PostDatedCheque, error) {
	if err := form.ValidateCreate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	rec.CreatedBy = userID
	if rec.Status == "" {
		rec.Status = domain.PdcStatusReceived
	}
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *pdcService) GetByID(ctx context.Context, tenantID, chequeID uuid.UUID) (*domain.PostDatedCheque, error) {
	return s.repo.GetByID(ctx, tenantID, chequeID)
}

func (s *pdcService) List(ctx context.Context, tenantID uuid.UUID, filters port.PdcFilters, offset, limit int) ([]domain.PostDatedCheque, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, filters, offset, limit)
}

func (s *pdcService) Update(ctx context.Context, tenantID, chequeID uuid.UUID, form forms.PdcForm) (*domain.PostDatedCheque, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, chequeID)
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
	// Status and its timestamps are owned by Transition.
	rec.Status = existing.Status
	rec.DepositedAt = existing.DepositedAt
	rec.SettledAt = existing.SettledAt
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *pdcService) Transition(ctx context.Context, tenantID, chequeID uuid.UUID, input TransitionPdcInput) (*domain.PostDatedCheque, error) {
	cheque, err := s.repo.GetByID(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(cheque.Status, input.Status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	var depositedAt, settledAt *time.Time
	switch input.Status {
	case domain.PdcStatusDeposited:
		depositedAt = &now
	case domain.PdcStatusCleared, domain.PdcStatusBounced:
		settledAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, tenantID, chequeID, input.Status, input.Notes, depositedAt, settledAt); err != nil {
		return nil, err
	}

	cheque.Status = input.Status
	cheque.StatusNotes = input.Notes
	if depositedAt != nil {
		cheque.DepositedAt = depositedAt
	}
	if settledAt != nil {
		cheque.SettledAt = settledAt
	}

	if input.Status == domain.PdcStatusBounced {
		s.notifyAdmins(ctx, tenantID, func(u *domain.User) error {
			return s.emails.SendChequeBouncedAlert(ctx, u.Email, u.FullName, cheque)
		})
	}
	return cheque, nil
}

func (s *pdcService) NextStatuses(ctx context.Context, tenantID, chequeID uuid.UUID) ([]domain.PdcStatus, error) {
	cheque, err := s.repo.GetByID(ctx, tenantID, chequeID)
	if err != nil {
		return nil, err
	}
	return domain.NextStatuses(cheque.Status), nil
}

func (s *pdcService) Delete(ctx context.Context, tenantID, chequeID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, chequeID)
}

// SendDueReminders emails tenant admins about cheques still in RECEIVED that
// fall due within the configured window. Returns the number of cheques
// covered by the reminders.
func (s *pdcService) SendDueReminders(ctx context.Context, tenantID uuid.UUID) (int, error) {
	within := time.Duration(s.dueSoonDays) * 24 * time.Hour
	cheques, err := s.repo.DueSoon(ctx, tenantID, within)
	if err != nil {
		return 0, err
	}
	if len(cheques) == 0 {
		return 0, nil
	}

	for i := range cheques {
		cheque := &cheques[i]
		s.notifyAdmins(ctx, tenantID, func(u *domain.User) error {
			return s.emails.SendChequeDueReminder(ctx, u.Email, u.FullName, cheque)
		})
	}
	return len(cheques), nil
}

// notifyAdmins delivers an email to every active admin of the tenant.
// Delivery failures are logged, not propagated: a cheque state change must
// not fail because a mailbox is unreachable.
func (s *pdcService) notifyAdmins(ctx context.Context, tenantID uuid.UUID, send func(*domain.User) error) {
	users, _, err := s.users.ListByTenant(ctx, tenantID, 0, 100)
	if err != nil {
		log.Printf("pdcService.notifyAdmins: listing users for tenant %s: %v", tenantID, err)
		return
	}
	for i := range users {
		u := &users[i]
		if u.Role != domain.RoleAdmin || !u.IsActive {
			continue
		}
		if err := send(u); err != nil {
			log.Printf("pdcService.notifyAdmins: sending to %s: %v", u.Email, err)
		}
	}
}
