package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/service"
	"aqari/internal/validator"
	"aqari/internal/validator/forms"
	"aqari/mocks"
)

func scheduledInspectionForm() forms.InspectionForm {
	return forms.InspectionForm{
		PropertyID:    uuid.New().String(),
		ScheduledDate: validator.Today().AddDate(0, 0, 7).Format(validator.DateLayout),
		Inspector:     "R. Haddad",
		Status:        domain.InspectionStatusScheduled,
	}
}

func TestInspectionService_Create_NoCompletionForScheduled(t *testing.T) {
	repo := new(mocks.MockInspectionRepo)
	svc := service.NewInspectionService(repo)

	tenantID := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Inspection")).Return(nil)

	inspection, err := svc.Create(context.Background(), tenantID, uuid.New(), scheduledInspectionForm())
	require.NoError(t, err)
	assert.Nil(t, inspection.CompletedAt)
	assert.Nil(t, inspection.Result)
}

func TestInspectionService_Create_RejectsPastScheduledDate(t *testing.T) {
	svc := service.NewInspectionService(new(mocks.MockInspectionRepo))

	form := scheduledInspectionForm()
	form.ScheduledDate = validator.Today().AddDate(0, 0, -1).Format(validator.DateLayout)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "scheduled_date")
}

func TestInspectionService_Update_TerminalStatusNeedsResult(t *testing.T) {
	repo := new(mocks.MockInspectionRepo)
	svc := service.NewInspectionService(repo)

	tenantID := uuid.New()
	inspectionID := uuid.New()
	existing := &domain.Inspection{ID: inspectionID, TenantID: tenantID, Status: domain.InspectionStatusInProgress}
	repo.On("GetByID", mock.Anything, tenantID, inspectionID).Return(existing, nil)

	form := scheduledInspectionForm()
	form.Status = domain.InspectionStatusFailed // terminal, but no result recorded

	_, err := svc.Update(context.Background(), tenantID, inspectionID, form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "result")
}

func TestInspectionService_Update_FailedResultNeedsIssues(t *testing.T) {
	repo := new(mocks.MockInspectionRepo)
	svc := service.NewInspectionService(repo)

	tenantID := uuid.New()
	inspectionID := uuid.New()
	existing := &domain.Inspection{ID: inspectionID, TenantID: tenantID, Status: domain.InspectionStatusInProgress}
	repo.On("GetByID", mock.Anything, tenantID, inspectionID).Return(existing, nil)

	form := scheduledInspectionForm()
	form.Status = domain.InspectionStatusFailed
	form.Result = domain.InspectionResultFailed

	_, err := svc.Update(context.Background(), tenantID, inspectionID, form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "issues_found")
}

func TestInspectionService_Update_StampsCompletionOnce(t *testing.T) {
	repo := new(mocks.MockInspectionRepo)
	svc := service.NewInspectionService(repo)

	tenantID := uuid.New()
	inspectionID := uuid.New()
	completed := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	existing := &domain.Inspection{
		ID:          inspectionID,
		TenantID:    tenantID,
		Status:      domain.InspectionStatusPassed,
		CompletedAt: &completed,
	}

	repo.On("GetByID", mock.Anything, tenantID, inspectionID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Inspection")).Return(nil)

	form := scheduledInspectionForm()
	form.Status = domain.InspectionStatusPassed
	form.Result = domain.InspectionResultPassed

	updated, err := svc.Update(context.Background(), tenantID, inspectionID, form)
	require.NoError(t, err)
	assert.Equal(t, &completed, updated.CompletedAt)
}
