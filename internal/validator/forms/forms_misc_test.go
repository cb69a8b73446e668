package forms

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

func TestViolationForm(t *testing.T) {
	valid := func() ViolationForm {
		return ViolationForm{
			PropertyID:    uuid.NewString(),
			ViolationDate: day(-2),
			Description:   "Unauthorized balcony enclosure",
			FineStatus:    domain.FineStatusPending,
		}
	}

	t.Run("valid without fine", func(t *testing.T) {
		f := valid()
		assert.True(t, f.Validate().Valid())
	})
	t.Run("future date fails", func(t *testing.T) {
		f := valid()
		f.ViolationDate = day(3)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("violation_date"))
	})
	t.Run("negative fine fails", func(t *testing.T) {
		f := valid()
		f.FineAmount = validator.Num(-500)
		assert.False(t, f.Validate().Valid())
	})
	t.Run("short description fails", func(t *testing.T) {
		f := valid()
		f.Description = "bad"
		assert.False(t, f.Validate().Valid())
	})
	t.Run("nil fine maps to nil pointer", func(t *testing.T) {
		f := valid()
		rec := f.ToRecord()
		assert.Nil(t, rec.FineAmount)
	})
}

func TestAssetForm(t *testing.T) {
	valid := func() AssetForm {
		return AssetForm{
			PropertyID: uuid.NewString(),
			Name:       "Chiller unit 2",
			Condition:  domain.AssetConditionGood,
		}
	}

	t.Run("valid without cost", func(t *testing.T) {
		assert.True(t, (&AssetForm{
			PropertyID: uuid.NewString(),
			Name:       "Chiller unit 2",
			Condition:  domain.AssetConditionGood,
		}).Validate().Valid())
	})
	t.Run("negative cost fails", func(t *testing.T) {
		f := valid()
		f.PurchaseCost = validator.Num(-1)
		assert.False(t, f.Validate().Valid())
	})
	t.Run("bad condition fails", func(t *testing.T) {
		f := valid()
		f.Condition = "BROKEN"
		assert.False(t, f.Validate().Valid())
	})
	t.Run("warranty maps to pointer", func(t *testing.T) {
		f := valid()
		f.WarrantyExpiry = day(365)
		rec := f.ToRecord()
		require.NotNil(t, rec.WarrantyExpiry)
	})
}

func TestAnnouncementForm(t *testing.T) {
	valid := func() AnnouncementForm {
		return AnnouncementForm{
			Title:    "Water shutdown notice",
			Body:     "The water supply will be interrupted on Friday morning for tank cleaning.",
			Audience: domain.AudienceTenants,
		}
	}

	t.Run("valid", func(t *testing.T) {
		f := valid()
		assert.True(t, f.Validate().Valid())
	})
	t.Run("expiry before publish fails", func(t *testing.T) {
		f := valid()
		f.PublishAt = day(5)
		f.ExpiresAt = day(2)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("expires_at"))
	})
	t.Run("expiry alone is fine", func(t *testing.T) {
		f := valid()
		f.ExpiresAt = day(10)
		assert.True(t, f.Validate().Valid())
	})
	t.Run("short body fails", func(t *testing.T) {
		f := valid()
		f.Body = "short"
		assert.False(t, f.Validate().Valid())
	})
}

func TestPropertyForm(t *testing.T) {
	valid := func() PropertyForm {
		return PropertyForm{
			Name:      "Marina Heights",
			Type:      domain.PropertyTypeApartment,
			Address:   "Dubai Marina",
			City:      "Dubai",
			UnitCount: validator.Num(120),
		}
	}

	t.Run("valid", func(t *testing.T) {
		f := valid()
		assert.True(t, f.Validate().Valid())
	})
	t.Run("unit count required", func(t *testing.T) {
		f := valid()
		f.UnitCount = validator.FlexNumber{}
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("unit_count"))
	})
	t.Run("zero units fails", func(t *testing.T) {
		f := valid()
		f.UnitCount = validator.Num(0)
		assert.False(t, f.Validate().Valid())
	})
	t.Run("to record converts count", func(t *testing.T) {
		rec := validProperty(t)
		assert.Equal(t, 120, rec.UnitCount)
	})
}

func validProperty(t *testing.T) domain.Property {
	t.Helper()
	f := PropertyForm{
		Name:      "Marina Heights",
		Type:      domain.PropertyTypeApartment,
		Address:   "Dubai Marina",
		City:      "Dubai",
		UnitCount: validator.Num(120),
	}
	require.True(t, f.Validate().Valid())
	return f.ToRecord()
}
