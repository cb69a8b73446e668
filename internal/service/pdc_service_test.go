package service_test

import (
	"context"
	"errors"
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

func validPdcForm() forms.PdcForm {
	return forms.PdcForm{
		PropertyID:   uuid.New().String(),
		LeaseRef:     "L-2026-001",
		ChequeNumber: "100045",
		BankName:     "Emirates NBD",
		Amount:       validator.Num(42500),
		DueDate:      time.Now().UTC().Add(72 * time.Hour).Format(validator.DateLayout),
		Status:       domain.PdcStatusReceived,
	}
}

func newPdcService(repo *mocks.MockPdcRepo, users *mocks.MockUserRepo, emails *mocks.MockEmailSender) service.PdcService {
	return service.NewPdcService(repo, users, emails, 7)
}

func TestPdcService_Create(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	svc := newPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	userID := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PostDatedCheque")).Return(nil)

	cheque, err := svc.Create(context.Background(), tenantID, userID, validPdcForm())
	require.NoError(t, err)
	assert.Equal(t, tenantID, cheque.TenantID)
	assert.Equal(t, userID, cheque.CreatedBy)
	assert.Equal(t, domain.PdcStatusReceived, cheque.Status)
	assert.Equal(t, 42500.0, cheque.Amount)

	repo.AssertExpectations(t)
}

func TestPdcService_Create_RejectsInvalidForm(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	svc := newPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	form := validPdcForm()
	form.Amount = validator.Num(0)
	form.ChequeNumber = ""

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "amount")
	assert.Contains(t, vErr.Fields, "cheque_number")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPdcService_Create_RejectsPastDueDate(t *testing.T) {
	svc := newPdcService(new(mocks.MockPdcRepo), new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	form := validPdcForm()
	form.DueDate = "2020-01-01"

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "due_date")
}

func TestPdcService_Transition_Allowed(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	svc := newPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	chequeID := uuid.New()
	cheque := &domain.PostDatedCheque{ID: chequeID, TenantID: tenantID, Status: domain.PdcStatusReceived}

	repo.On("GetByID", mock.Anything, tenantID, chequeID).Return(cheque, nil)
	repo.On("UpdateStatus", mock.Anything, tenantID, chequeID, domain.PdcStatusDeposited,
		"deposited at branch", mock.AnythingOfType("*time.Time"), (*time.Time)(nil)).Return(nil)

	updated, err := svc.Transition(context.Background(), tenantID, chequeID, service.TransitionPdcInput{
		Status: domain.PdcStatusDeposited,
		Notes:  "deposited at branch",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PdcStatusDeposited, updated.Status)
	require.NotNil(t, updated.DepositedAt)
	assert.Nil(t, updated.SettledAt)
	repo.AssertExpectations(t)
}

func TestPdcService_Transition_Rejected(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	svc := newPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	chequeID := uuid.New()
	cheque := &domain.PostDatedCheque{ID: chequeID, TenantID: tenantID, Status: domain.PdcStatusCleared}

	repo.On("GetByID", mock.Anything, tenantID, chequeID).Return(cheque, nil)

	_, err := svc.Transition(context.Background(), tenantID, chequeID, service.TransitionPdcInput{
		Status: domain.PdcStatusDeposited,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPdcService_Transition_BouncedAlertsAdmins(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	users := new(mocks.MockUserRepo)
	emails := new(mocks.MockEmailSender)
	svc := newPdcService(repo, users, emails)

	tenantID := uuid.New()
	chequeID := uuid.New()
	cheque := &domain.PostDatedCheque{ID: chequeID, TenantID: tenantID, Status: domain.PdcStatusDeposited}
	admin := domain.User{ID: uuid.New(), TenantID: tenantID, Email: "admin@gulf.ae", FullName: "Admin", Role: domain.RoleAdmin, IsActive: true}
	member := domain.User{ID: uuid.New(), TenantID: tenantID, Email: "member@gulf.ae", Role: domain.RoleMember, IsActive: true}

	repo.On("GetByID", mock.Anything, tenantID, chequeID).Return(cheque, nil)
	repo.On("UpdateStatus", mock.Anything, tenantID, chequeID, domain.PdcStatusBounced,
		"", (*time.Time)(nil), mock.AnythingOfType("*time.Time")).Return(nil)
	users.On("ListByTenant", mock.Anything, tenantID, 0, 100).Return([]domain.User{admin, member}, 2, nil)
	emails.On("SendChequeBouncedAlert", mock.Anything, "admin@gulf.ae", "Admin", mock.Anything).Return(nil)

	updated, err := svc.Transition(context.Background(), tenantID, chequeID, service.TransitionPdcInput{
		Status: domain.PdcStatusBounced,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.SettledAt)
	emails.AssertExpectations(t)
	emails.AssertNotCalled(t, "SendChequeBouncedAlert", mock.Anything, "member@gulf.ae", mock.Anything, mock.Anything)
}

func TestPdcService_SendDueReminders(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	users := new(mocks.MockUserRepo)
	emails := new(mocks.MockEmailSender)
	svc := newPdcService(repo, users, emails)

	tenantID := uuid.New()
	cheques := []domain.PostDatedCheque{
		{ID: uuid.New(), TenantID: tenantID, ChequeNumber: "100001"},
		{ID: uuid.New(), TenantID: tenantID, ChequeNumber: "100002"},
	}
	admin := domain.User{ID: uuid.New(), Email: "admin@gulf.ae", FullName: "Admin", Role: domain.RoleAdmin, IsActive: true}

	repo.On("DueSoon", mock.Anything, tenantID, 7*24*time.Hour).Return(cheques, nil)
	users.On("ListByTenant", mock.Anything, tenantID, 0, 100).Return([]domain.User{admin}, 1, nil)
	emails.On("SendChequeDueReminder", mock.Anything, "admin@gulf.ae", "Admin", mock.Anything).Return(nil).Times(2)

	count, err := svc.SendDueReminders(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	emails.AssertExpectations(t)
}

func TestPdcService_Update_PreservesLifecycleFields(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	svc := newPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	chequeID := uuid.New()
	deposited := time.Now().UTC()
	existing := &domain.PostDatedCheque{
		ID:          chequeID,
		TenantID:    tenantID,
		Status:      domain.PdcStatusDeposited,
		DepositedAt: &deposited,
	}

	repo.On("GetByID", mock.Anything, tenantID, chequeID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.PostDatedCheque")).Return(nil)

	form := validPdcForm()
	form.Status = domain.PdcStatusCancelled // the form cannot move status

	updated, err := svc.Update(context.Background(), tenantID, chequeID, form)
	require.NoError(t, err)
	assert.Equal(t, domain.PdcStatusDeposited, updated.Status)
	assert.Equal(t, &deposited, updated.DepositedAt)
}

func TestPdcService_SendDueReminders_RepoError(t *testing.T) {
	repo := new(mocks.MockPdcRepo)
	svc := newPdcService(repo, new(mocks.MockUserRepo), new(mocks.MockEmailSender))

	tenantID := uuid.New()
	repo.On("DueSoon", mock.Anything, tenantID, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.SendDueReminders(context.Background(), tenantID)
	assert.Error(t, err)
}
