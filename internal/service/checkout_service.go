package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/port"
	"aqari/internal/validator/forms"
)

// CheckoutService defines the move-out case contract. A unit can carry at
// most one open case at a time, and a case is frozen once its deposit refund
// has been issued.
type CheckoutService interface {
	Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.CheckoutForm) (*domain.CheckoutCase, error)
	GetByID(ctx context.Context, tenantID, checkoutID uuid.UUID) (*domain.CheckoutCase, error)
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CheckoutCase, int, error)
	Update(ctx context.Context, tenantID, checkoutID uuid.UUID, form forms.CheckoutForm) (*domain.CheckoutCase, error)
	IssueRefund(ctx context.Context, tenantID, checkoutID uuid.UUID, form forms.RefundForm) (*domain.CheckoutCase, error)
	Delete(ctx context.Context, tenantID, checkoutID uuid.UUID) error
}

type checkoutService struct {
	repo port.CheckoutRepository
}

// NewCheckoutService creates a new CheckoutService implementation.
func NewCheckoutService(repo port.CheckoutRepository) CheckoutService {
	return &checkoutService{repo: repo}
}

func (s *checkoutService) Create(ctx context.Context, tenantID, userID uuid.UUID, form forms.CheckoutForm) (*domain.CheckoutCase, error) {
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.TenantID = tenantID
	rec.CreatedBy = userID

	_, err := s.repo.GetOpenByUnit(ctx, tenantID, rec.PropertyID, rec.UnitRef)
	switch {
	case err == nil:
		return nil, domain.ErrCheckoutAlreadyOpen
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *checkoutService) GetByID(ctx context.Context, tenantID, checkoutID uuid.UUID) (*domain.CheckoutCase, error) {
	return s.repo.GetByID(ctx, tenantID, checkoutID)
}

func (s *checkoutService) List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]domain.CheckoutCase, int, error) {
	return s.repo.ListByTenant(ctx, tenantID, offset, limit)
}

func (s *checkoutService) Update(ctx context.Context, tenantID, checkoutID uuid.UUID, form forms.CheckoutForm) (*domain.CheckoutCase, error) {
	existing, err := s.repo.GetByID(ctx, tenantID, checkoutID)
	if err != nil {
		return nil, err
	}
	if existing.RefundIssuedAt != nil {
		return nil, domain.ErrRefundAlreadyIssued
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	rec := form.ToRecord()
	rec.ID = existing.ID
	rec.TenantID = existing.TenantID
	rec.CreatedBy = existing.CreatedBy
	rec.CreatedAt = existing.CreatedAt
	rec.RefundMethod = existing.RefundMethod
	rec.RefundBankName = existing.RefundBankName
	rec.RefundHolder = existing.RefundHolder
	rec.RefundIBAN = existing.RefundIBAN
	rec.RefundAmount = existing.RefundAmount
	rec.RefundIssuedAt = existing.RefundIssuedAt
	if err := s.repo.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// IssueRefund records the deposit payout against an open case. The refund
// form carries its own method-dependent requirements; issuing is a one-shot
// operation.
func (s *checkoutService) IssueRefund(ctx context.Context, tenantID, checkoutID uuid.UUID, form forms.RefundForm) (*domain.CheckoutCase, error) {
	checkout, err := s.repo.GetByID(ctx, tenantID, checkoutID)
	if err != nil {
		return nil, err
	}
	if checkout.RefundIssuedAt != nil {
		return nil, domain.ErrRefundAlreadyIssued
	}
	if err := form.Validate().Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	method := form.Method
	checkout.RefundMethod = &method
	checkout.RefundBankName = form.BankName
	checkout.RefundHolder = form.AccountHolder
	checkout.RefundIBAN = form.IBAN
	checkout.RefundAmount = form.Amount.Float()
	checkout.RefundIssuedAt = &now

	if err := s.repo.Update(ctx, checkout); err != nil {
		return nil, err
	}
	return checkout, nil
}

func (s *checkoutService) Delete(ctx context.Context, tenantID, checkoutID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, checkoutID)
}
