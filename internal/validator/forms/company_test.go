package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
)

func validCompanyForm() CompanyProfileForm {
	return CompanyProfileForm{
		LegalName: "Aqari Properties LLC",
		Address:   "Office 1204, Marina Plaza",
		City:      "Dubai",
		Country:   "United Arab Emirates",
		TRN:       "100123456789012",
		Phone:     "+971501234567",
		Email:     "info@aqari.ae",
	}
}

func TestCompanyProfileValid(t *testing.T) {
	f := validCompanyForm()
	rep := f.Validate()
	assert.True(t, rep.Valid())
	assert.Empty(t, rep.ErrorMap())
}

func TestCompanyProfileRequiredFields(t *testing.T) {
	f := CompanyProfileForm{}
	rep := f.Validate()

	assert.False(t, rep.Valid())
	m := rep.ErrorMap()
	for _, path := range []string{"legal_name", "address", "city", "country", "trn", "phone", "email"} {
		assert.Contains(t, m, path)
	}
}

func TestCompanyProfileTRN(t *testing.T) {
	tests := []struct {
		name string
		trn  string
		ok   bool
	}{
		{"valid", "100123456789012", true},
		{"wrong prefix", "200123456789012", false},
		{"fourteen digits", "10012345678901", false},
		{"sixteen digits", "1001234567890123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validCompanyForm()
			f.TRN = tt.trn
			rep := f.Validate()
			assert.Equal(t, tt.ok, rep.Valid())
			if !tt.ok {
				assert.True(t, rep.HasError("trn"))
			}
		})
	}
}

func TestCompanyProfilePhoneStrict(t *testing.T) {
	f := validCompanyForm()
	f.Phone = "0501234567"
	rep := f.Validate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("phone"))
}

func TestCompanyProfileEmailWhitespaceRejected(t *testing.T) {
	// The format check runs before the trim transform, so surrounding
	// whitespace fails validation even though the normalizer would fix it.
	f := validCompanyForm()
	f.Email = " info@aqari.ae"
	rep := f.Validate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("email"))
}

func TestCompanyProfileToRequestNormalizes(t *testing.T) {
	f := validCompanyForm()
	f.LegalName = "  Aqari Properties LLC  "
	f.Email = "INFO@AQARI.AE"
	require.True(t, f.Validate().Valid())

	req := f.ToRequest()
	assert.Equal(t, "Aqari Properties LLC", req.LegalName)
	assert.Equal(t, "info@aqari.ae", req.Email)
}

func TestDefaultCompanyProfileForm(t *testing.T) {
	f := DefaultCompanyProfileForm()
	assert.Equal(t, DefaultCountry, f.Country)
	assert.Equal(t, PhoneStub, f.Phone)
}

func TestCompanyProfileFormFromRecord(t *testing.T) {
	t.Run("fills defaults for missing values", func(t *testing.T) {
		f := CompanyProfileFormFromRecord(&domain.CompanyProfile{LegalName: "Aqari"})
		assert.Equal(t, DefaultCountry, f.Country)
		assert.Equal(t, PhoneStub, f.Phone)
	})
	t.Run("round trip", func(t *testing.T) {
		src := validCompanyForm()
		req := src.ToRequest()
		rec := domain.CompanyProfile{
			LegalName: req.LegalName, Address: req.Address, City: req.City,
			Country: req.Country, TRN: req.TRN, Phone: req.Phone, Email: req.Email,
		}
		back := CompanyProfileFormFromRecord(&rec)
		assert.True(t, back.Validate().Valid())
		assert.Equal(t, src.TRN, back.TRN)
	})
}
