package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"aqari/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendChequeDueReminder(ctx context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error {
	args := m.Called(ctx, toEmail, toName, cheque)
	return args.Error(0)
}

func (m *MockEmailSender) SendChequeBouncedAlert(ctx context.Context, toEmail, toName string, cheque *domain.PostDatedCheque) error {
	args := m.Called(ctx, toEmail, toName, cheque)
	return args.Error(0)
}

func (m *MockEmailSender) SendAnnouncement(ctx context.Context, toEmail, toName, title, body string) error {
	args := m.Called(ctx, toEmail, toName, title, body)
	return args.Error(0)
}
