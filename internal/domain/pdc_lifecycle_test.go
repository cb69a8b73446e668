package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from PdcStatus
		to   PdcStatus
		want bool
	}{
		{"received to deposited", PdcStatusReceived, PdcStatusDeposited, true},
		{"received to withdrawn", PdcStatusReceived, PdcStatusWithdrawn, true},
		{"received to cancelled", PdcStatusReceived, PdcStatusCancelled, true},
		{"received to replaced", PdcStatusReceived, PdcStatusReplaced, true},
		{"received to cleared skips deposit", PdcStatusReceived, PdcStatusCleared, false},
		{"deposited to cleared", PdcStatusDeposited, PdcStatusCleared, true},
		{"deposited to bounced", PdcStatusDeposited, PdcStatusBounced, true},
		{"deposited to withdrawn", PdcStatusDeposited, PdcStatusWithdrawn, false},
		{"bounced to replaced", PdcStatusBounced, PdcStatusReplaced, true},
		{"bounced to cancelled", PdcStatusBounced, PdcStatusCancelled, true},
		{"bounced to deposited", PdcStatusBounced, PdcStatusDeposited, false},
		{"cleared is terminal", PdcStatusCleared, PdcStatusCancelled, false},
		{"cancelled is terminal", PdcStatusCancelled, PdcStatusReceived, false},
		{"no self transition", PdcStatusReceived, PdcStatusReceived, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]PdcStatus{PdcStatusDeposited, PdcStatusWithdrawn, PdcStatusCancelled, PdcStatusReplaced},
		NextStatuses(PdcStatusReceived))
	assert.Empty(t, NextStatuses(PdcStatusCleared))
}

func TestTerminalPdcStatus(t *testing.T) {
	for _, s := range []PdcStatus{PdcStatusCleared, PdcStatusReplaced, PdcStatusWithdrawn, PdcStatusCancelled} {
		assert.True(t, TerminalPdcStatus(s), string(s))
	}
	for _, s := range []PdcStatus{PdcStatusReceived, PdcStatusDeposited, PdcStatusBounced} {
		assert.False(t, TerminalPdcStatus(s), string(s))
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(map[string]string{
		"phone": "Format: UAE Phone: phone must match +971 followed by 9 digits",
		"email": "Format: Email: email is not a valid email address",
	})
	// paths are sorted for a stable message
	assert.Equal(t, "validation failed: email, phone", err.Error())

	assert.Equal(t, "validation failed", NewValidationError(nil).Error())
}
