package forms

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

func validInspectionForm() InspectionForm {
	return InspectionForm{
		PropertyID:    uuid.NewString(),
		ScheduledDate: validator.Today().Format(validator.DateLayout),
		Inspector:     "A. Hassan",
		Status:        domain.InspectionStatusScheduled,
	}
}

func TestInspectionValid(t *testing.T) {
	f := validInspectionForm()
	assert.True(t, f.Validate().Valid())
	assert.True(t, f.ValidateCreate().Valid())
}

func TestInspectionResultDecisionTable(t *testing.T) {
	tests := []struct {
		name   string
		status domain.InspectionStatus
		result domain.InspectionResult
		issues string
		ok     bool
		path   string
	}{
		{"scheduled needs no result", domain.InspectionStatusScheduled, "", "", true, ""},
		{"in progress needs no result", domain.InspectionStatusInProgress, "", "", true, ""},
		{"cancelled needs no result", domain.InspectionStatusCancelled, "", "", true, ""},
		{"passed without result fails", domain.InspectionStatusPassed, "", "", false, "result"},
		{"failed without result fails", domain.InspectionStatusFailed, "", "", false, "result"},
		{"passed with result ok", domain.InspectionStatusPassed, domain.InspectionResultPassed, "", true, ""},
		{"failed result needs issues", domain.InspectionStatusFailed, domain.InspectionResultFailed, "", false, "issues_found"},
		{"failed result with issues ok", domain.InspectionStatusFailed, domain.InspectionResultFailed, "broken fire panel", true, ""},
		{"partial pass needs issues", domain.InspectionStatusPassed, domain.InspectionResultPartialPass, "", false, "issues_found"},
		{"partial pass with issues ok", domain.InspectionStatusPassed, domain.InspectionResultPartialPass, "elevator cert expired", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validInspectionForm()
			f.Status = tt.status
			f.Result = tt.result
			f.IssuesFound = tt.issues
			rep := f.Validate()
			assert.Equal(t, tt.ok, rep.Valid())
			if !tt.ok {
				assert.True(t, rep.HasError(tt.path))
			}
		})
	}
}

func TestInspectionCreateScheduledNotPast(t *testing.T) {
	f := validInspectionForm()
	f.ScheduledDate = validator.Today().AddDate(0, 0, -1).Format(validator.DateLayout)

	// edit mode allows past dates, create mode does not
	assert.True(t, f.Validate().Valid())
	rep := f.ValidateCreate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("scheduled_date"))

	f.ScheduledDate = validator.Today().Format(validator.DateLayout)
	assert.True(t, f.ValidateCreate().Valid())
}

func TestInspectionToRecord(t *testing.T) {
	f := validInspectionForm()
	f.Status = domain.InspectionStatusPassed
	f.Result = domain.InspectionResultPassed
	require.True(t, f.Validate().Valid())

	rec := f.ToRecord()
	assert.NotEqual(t, uuid.Nil, rec.PropertyID)
	require.NotNil(t, rec.Result)
	assert.Equal(t, domain.InspectionResultPassed, *rec.Result)
	assert.Nil(t, rec.RequirementID)
}

func TestInspectionCompletedAt(t *testing.T) {
	f := validInspectionForm()
	now := validator.Today()

	assert.Nil(t, f.CompletedAt(now))
	f.Status = domain.InspectionStatusPassed
	require.NotNil(t, f.CompletedAt(now))
}

func TestDefaultInspectionForm(t *testing.T) {
	f := DefaultInspectionForm()
	assert.Equal(t, domain.InspectionStatusScheduled, f.Status)
	assert.Equal(t, validator.Today().Format(validator.DateLayout), f.ScheduledDate)
}
