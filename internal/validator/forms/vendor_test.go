package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aqari/internal/domain"
)

func validVendorForm() VendorForm {
	return VendorForm{
		Name:         "Gulf Maintenance Co",
		Category:     domain.VendorCategoryMaintenance,
		ContactPhone: "0501234567",
		ContactEmail: "ops@gulfmaint.ae",
		TRN:          "100987654321098",
		IsActive:     true,
	}
}

func TestVendorValid(t *testing.T) {
	f := validVendorForm()
	assert.True(t, f.Validate().Valid())
}

func TestVendorLenientPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		ok    bool
	}{
		{"local form accepted", "0501234567", true},
		{"international accepted", "+971501234567", true},
		{"with separators accepted", "050-123 4567", true},
		{"bare subscriber accepted", "501234567", true},
		{"garbage rejected", "call me", false},
		{"empty passes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validVendorForm()
			f.ContactPhone = tt.phone
			assert.Equal(t, tt.ok, f.Validate().Valid())
		})
	}
}

func TestVendorToRecordNormalizesPhone(t *testing.T) {
	f := validVendorForm()
	f.ContactPhone = "050-123 4567"
	f.ContactEmail = "OPS@GulfMaint.AE"

	rec := f.ToRecord()
	assert.Equal(t, "+971501234567", rec.ContactPhone)
	assert.Equal(t, "ops@gulfmaint.ae", rec.ContactEmail)
}

func TestVendorCategoryEnum(t *testing.T) {
	f := validVendorForm()
	f.Category = "PLUMBER"
	rep := f.Validate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("category"))
}

func TestDefaultVendorForm(t *testing.T) {
	f := DefaultVendorForm()
	assert.Equal(t, domain.VendorCategoryOther, f.Category)
	assert.True(t, f.IsActive)
}
