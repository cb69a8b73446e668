package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBankAccountForm() BankAccountForm {
	return BankAccountForm{
		BankName:      "Emirates NBD",
		AccountHolder: "Aqari Properties LLC",
		IBAN:          "AE070331234567890123456",
		SWIFT:         "EBILAEAD",
		Currency:      "AED",
	}
}

func TestBankAccountValid(t *testing.T) {
	f := validBankAccountForm()
	assert.True(t, f.Validate().Valid())
}

func TestBankAccountIBAN(t *testing.T) {
	tests := []struct {
		name string
		iban string
		ok   bool
	}{
		{"valid", "AE070331234567890123456", true},
		{"wrong country", "GB070331234567890123456", false},
		{"short", "AE07033123456789012345", false},
		{"missing fails required", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validBankAccountForm()
			f.IBAN = tt.iban
			rep := f.Validate()
			assert.Equal(t, tt.ok, rep.Valid())
		})
	}
}

func TestBankAccountSWIFTIsWarningOnly(t *testing.T) {
	f := validBankAccountForm()
	f.SWIFT = "BAD"
	rep := f.Validate()

	// a bad SWIFT does not block submission but does show up as a failure
	assert.True(t, rep.Valid())
	assert.Len(t, rep.Failures(), 1)
	assert.Equal(t, "swift", rep.Failures()[0].FieldPath)
}

func TestBankAccountCurrency(t *testing.T) {
	f := validBankAccountForm()
	f.Currency = "XYZ"
	rep := f.Validate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("currency"))

	// lowercase known code passes: the check uppercases before matching
	f.Currency = "aed"
	assert.True(t, f.Validate().Valid())
}

func TestBankAccountToRecordUppercases(t *testing.T) {
	f := validBankAccountForm()
	f.IBAN = "ae070331234567890123456"
	f.SWIFT = "ebilaead"
	f.Currency = "aed"

	rec := f.ToRecord()
	assert.Equal(t, "AE070331234567890123456", rec.IBAN)
	assert.Equal(t, "EBILAEAD", rec.SWIFT)
	assert.Equal(t, "AED", rec.Currency)
}

func TestDefaultBankAccountForm(t *testing.T) {
	assert.Equal(t, "AED", DefaultBankAccountForm().Currency)
}
