package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTRN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid 15 digits with 100 prefix", "100123456789012", true},
		{"wrong prefix", "200123456789012", false},
		{"too short", "10012345678901", false},
		{"too long", "1001234567890123", false},
		{"letters", "100A23456789012", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTRN(tt.input))
		})
	}
}

func TestValidUAEPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"canonical", "+971501234567", true},
		{"local form rejected", "0501234567", false},
		{"missing plus", "971501234567", false},
		{"too few digits", "+97150123456", false},
		{"too many digits", "+9715012345678", false},
		{"spaces rejected", "+971 50 123 4567", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidUAEPhone(tt.input))
		})
	}
}

func TestValidE164(t *testing.T) {
	assert.True(t, ValidE164("+971501234567"))
	assert.True(t, ValidE164("+14155550123"))
	assert.False(t, ValidE164("+0123456"))
	assert.False(t, ValidE164("971501234567"))
	assert.False(t, ValidE164("+"))
}

func TestFormatToE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"already international", "+971501234567", "+971501234567", true},
		{"local 05 form", "0501234567", "+971501234567", true},
		{"bare country code", "971501234567", "+971501234567", true},
		{"bare subscriber", "501234567", "+971501234567", true},
		{"separators stripped", "050-123 4567", "+971501234567", true},
		{"garbage", "abc", "abc", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatToE164(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidUAEIBAN(t *testing.T) {
	assert.True(t, ValidUAEIBAN("AE070331234567890123456"))
	assert.False(t, ValidUAEIBAN("AE07033123456789012345"))   // 20 digits
	assert.False(t, ValidUAEIBAN("AE0703312345678901234567")) // 22 digits
	assert.False(t, ValidUAEIBAN("GB070331234567890123456"))
	assert.False(t, ValidUAEIBAN("ae070331234567890123456"))
}

func TestValidSWIFT(t *testing.T) {
	assert.True(t, ValidSWIFT("EBILAEAD"))
	assert.True(t, ValidSWIFT("EBILAEADXXX"))
	assert.False(t, ValidSWIFT("EBILAEA"))
	assert.False(t, ValidSWIFT("EBILAEADXX"))
	assert.False(t, ValidSWIFT("ebilaead"))
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "info@example.com", true},
		{"uppercase accepted", "INFO@X.COM", true},
		{"missing at", "example.com", false},
		{"missing dot in domain", "info@example", false},
		{"leading whitespace fails", " info@example.com", false},
		{"trailing whitespace fails", "info@example.com ", false},
		{"inner whitespace fails", "in fo@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.input))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "info@x.com", NormalizeEmail("INFO@X.COM"))
	assert.Equal(t, "info@x.com", NormalizeEmail("  info@x.com  "))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-29")
	assert.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, 29, d.Day())

	_, err = ParseDate("29/08/2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestToday(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
}
