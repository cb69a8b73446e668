package port

import (
	"context"

	"aqari/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendChequeDueReminder(ctx context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error
	SendChequeBouncedAlert(ctx context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error
	SendAnnouncement(ctx context.Context, toEmail, toName, title, body string) error
}
