package forms

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
)

func validComplianceForm() ComplianceRequirementForm {
	return ComplianceRequirementForm{
		Name:      "Civil defense certificate renewal",
		Category:  domain.ComplianceCategoryCivilDefense,
		Frequency: domain.ComplianceFrequencyAnnual,
		Status:    domain.ComplianceStatusActive,
	}
}

func TestComplianceValid(t *testing.T) {
	f := validComplianceForm()
	assert.True(t, f.Validate().Valid())
}

func TestComplianceEnums(t *testing.T) {
	f := validComplianceForm()
	f.Category = "UNKNOWN"
	f.Frequency = "WEEKLY"
	rep := f.Validate()

	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("category"))
	assert.True(t, rep.HasError("frequency"))
}

func TestComplianceApplicablePropertiesPerIndex(t *testing.T) {
	f := validComplianceForm()
	f.ApplicableProperties = []string{uuid.NewString(), "not-a-uuid", uuid.NewString()}
	rep := f.Validate()

	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("applicable_properties[1]"))
	assert.False(t, rep.HasError("applicable_properties[0]"))
	assert.False(t, rep.HasError("applicable_properties[2]"))
}

func TestCompliancePropertyIDsNormalization(t *testing.T) {
	t.Run("empty list means all properties", func(t *testing.T) {
		f := validComplianceForm()
		assert.Nil(t, f.PropertyIDs())
	})
	t.Run("explicit ids survive", func(t *testing.T) {
		id := uuid.New()
		f := validComplianceForm()
		f.ApplicableProperties = []string{id.String()}
		ids := f.PropertyIDs()
		require.Len(t, ids, 1)
		assert.Equal(t, id, ids[0])
	})
}

func TestComplianceRoundTrip(t *testing.T) {
	f := validComplianceForm()
	rec := f.ToRecord()
	back := ComplianceRequirementFormFromRecord(&rec)
	assert.True(t, back.Validate().Valid())
	assert.Equal(t, f.Name, back.Name)
	assert.Empty(t, back.ApplicableProperties)
}
