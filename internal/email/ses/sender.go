package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendChequeDueReminder(ctx context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error {
	subject := fmt.Sprintf("Cheque %s due on %s", cheque.ChequeNumber, cheque.DueDate.Format(validator.DateLayout))
	htmlBody := buildChequeHTML(toName,
		"Upcoming cheque",
		fmt.Sprintf("Cheque %s (%s) for AED %.2f is due on %s. Make sure it is deposited on time.",
			cheque.ChequeNumber, cheque.BankName, cheque.Amount, cheque.DueDate.Format(validator.DateLayout)))
	textBody := fmt.Sprintf("Hi %s,\n\nCheque %s (%s) for AED %.2f is due on %s.\n\nAqari",
		toName, cheque.ChequeNumber, cheque.BankName, cheque.Amount, cheque.DueDate.Format(validator.DateLayout))

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendChequeBouncedAlert(ctx context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error {
	subject := fmt.Sprintf("Cheque %s bounced", cheque.ChequeNumber)
	htmlBody := buildChequeHTML(toName,
		"Bounced cheque",
		fmt.Sprintf("Cheque %s (%s) for AED %.2f has bounced. Follow up with the tenant on lease %s.",
			cheque.ChequeNumber, cheque.BankName, cheque.Amount, cheque.LeaseRef))
	textBody := fmt.Sprintf("Hi %s,\n\nCheque %s (%s) for AED %.2f has bounced. Follow up with the tenant on lease %s.\n\nAqari",
		toName, cheque.ChequeNumber, cheque.BankName, cheque.Amount, cheque.LeaseRef)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *sesSender) SendAnnouncement(ctx context.Context, toEmail, toName, title, body string) error {
	htmlBody := buildChequeHTML(toName, title, body)
	textBody := fmt.Sprintf("Hi %s,\n\n%s\n\n%s\n\nAqari", toName, title, body)
	return s.send(ctx, toEmail, title, htmlBody, textBody)
}

func (s *sesSender) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildChequeHTML(name, heading, message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">%s</h2>
  <p>Hi %s,</p>
  <p>%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Aqari - Property Management Platform</p>
</body>
</html>`, heading, name, message)
}
