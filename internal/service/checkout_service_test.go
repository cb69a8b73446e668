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

func validCheckoutForm() forms.CheckoutForm {
	today := validator.Today()
	return forms.CheckoutForm{
		PropertyID:   uuid.New().String(),
		UnitRef:      "A-1204",
		NoticeDate:   today.Format(validator.DateLayout),
		MoveOutDate:  today.AddDate(0, 2, 0).Format(validator.DateLayout),
		NoticeReason: domain.NoticeReasonEndOfTerm,
	}
}

func TestCheckoutService_Create(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	tenantID := uuid.New()
	userID := uuid.New()
	form := validCheckoutForm()

	repo.On("GetOpenByUnit", mock.Anything, tenantID, mock.Anything, "A-1204").Return(nil, domain.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CheckoutCase")).Return(nil)

	checkout, err := svc.Create(context.Background(), tenantID, userID, form)
	require.NoError(t, err)
	assert.Equal(t, tenantID, checkout.TenantID)
	assert.Equal(t, "A-1204", checkout.UnitRef)
	repo.AssertExpectations(t)
}

func TestCheckoutService_Create_UnitAlreadyOpen(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	tenantID := uuid.New()
	open := &domain.CheckoutCase{ID: uuid.New(), TenantID: tenantID, UnitRef: "A-1204"}
	repo.On("GetOpenByUnit", mock.Anything, tenantID, mock.Anything, "A-1204").Return(open, nil)

	_, err := svc.Create(context.Background(), tenantID, uuid.New(), validCheckoutForm())
	assert.ErrorIs(t, err, domain.ErrCheckoutAlreadyOpen)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutService_Create_RejectsBadDateOrder(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	form := validCheckoutForm()
	form.MoveOutDate = validator.Today().AddDate(0, 0, -30).Format(validator.DateLayout)

	_, err := svc.Create(context.Background(), uuid.New(), uuid.New(), form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "move_out_date")
}

func TestCheckoutService_IssueRefund_BankTransfer(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	tenantID := uuid.New()
	checkoutID := uuid.New()
	checkout := &domain.CheckoutCase{ID: checkoutID, TenantID: tenantID}

	repo.On("GetByID", mock.Anything, tenantID, checkoutID).Return(checkout, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.CheckoutCase")).Return(nil)

	form := forms.RefundForm{
		Method:        domain.RefundMethodBankTransfer,
		BankName:      "FAB",
		AccountHolder: "Ahmed K",
		IBAN:          "AE070331234567890123456",
		Amount:        validator.Num(12000),
	}

	updated, err := svc.IssueRefund(context.Background(), tenantID, checkoutID, form)
	require.NoError(t, err)
	require.NotNil(t, updated.RefundIssuedAt)
	require.NotNil(t, updated.RefundMethod)
	assert.Equal(t, domain.RefundMethodBankTransfer, *updated.RefundMethod)
	assert.Equal(t, "AE070331234567890123456", updated.RefundIBAN)
	require.NotNil(t, updated.RefundAmount)
	assert.Equal(t, 12000.0, *updated.RefundAmount)
}

func TestCheckoutService_IssueRefund_AlreadyIssued(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	tenantID := uuid.New()
	checkoutID := uuid.New()
	issued := time.Now().UTC()
	checkout := &domain.CheckoutCase{ID: checkoutID, TenantID: tenantID, RefundIssuedAt: &issued}

	repo.On("GetByID", mock.Anything, tenantID, checkoutID).Return(checkout, nil)

	form := forms.RefundForm{
		Method:           domain.RefundMethodCash,
		CashAcknowledged: true,
		Amount:           validator.Num(500),
	}
	_, err := svc.IssueRefund(context.Background(), tenantID, checkoutID, form)
	assert.ErrorIs(t, err, domain.ErrRefundAlreadyIssued)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCheckoutService_IssueRefund_BankTransferNeedsIBAN(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	tenantID := uuid.New()
	checkoutID := uuid.New()
	checkout := &domain.CheckoutCase{ID: checkoutID, TenantID: tenantID}
	repo.On("GetByID", mock.Anything, tenantID, checkoutID).Return(checkout, nil)

	form := forms.RefundForm{
		Method: domain.RefundMethodBankTransfer,
		Amount: validator.Num(500),
	}
	_, err := svc.IssueRefund(context.Background(), tenantID, checkoutID, form)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "iban")
	assert.Contains(t, vErr.Fields, "bank_name")
	assert.Contains(t, vErr.Fields, "account_holder")
}

func TestCheckoutService_Update_FrozenAfterRefund(t *testing.T) {
	repo := new(mocks.MockCheckoutRepo)
	svc := service.NewCheckoutService(repo)

	tenantID := uuid.New()
	checkoutID := uuid.New()
	issued := time.Now().UTC()
	checkout := &domain.CheckoutCase{ID: checkoutID, TenantID: tenantID, RefundIssuedAt: &issued}

	repo.On("GetByID", mock.Anything, tenantID, checkoutID).Return(checkout, nil)

	_, err := svc.Update(context.Background(), tenantID, checkoutID, validCheckoutForm())
	assert.ErrorIs(t, err, domain.ErrRefundAlreadyIssued)
}
