package noop

import (
	"context"
	"log"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
// Used in local development where SES is not configured.
func NewNoopSender() port.EmailSender {
	return noopSender{}
}

func (noopSender) SendChequeDueReminder(_ context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error {
	log.Printf("[NOOP EMAIL] Due reminder for %s (%s): cheque %s, AED %.2f, due %s",
		toName, toEmail, cheque.ChequeNumber, cheque.Amount, cheque.DueDate.Format(validator.DateLayout))
	return nil
}

func (noopSender) SendChequeBouncedAlert(_ context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error {
	log.Printf("[NOOP EMAIL] Bounce alert for %s (%s): cheque %s, lease %s",
		toName, toEmail, cheque.ChequeNumber, cheque.LeaseRef)
	return nil
}

func (noopSender) SendAnnouncement(_ context.Context, toEmail, toName, title, _ string) error {
	log.Printf("[NOOP EMAIL] Announcement for %s (%s): %s", toName, toEmail, title)
	return nil
}
