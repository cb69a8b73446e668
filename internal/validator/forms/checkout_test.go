package forms

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

func day(offset int) string {
	return validator.Today().AddDate(0, 0, offset).Format(validator.DateLayout)
}

func validCheckoutForm() CheckoutForm {
	return CheckoutForm{
		PropertyID:   uuid.NewString(),
		UnitRef:      "1204",
		NoticeDate:   day(-30),
		MoveOutDate:  day(30),
		NoticeReason: domain.NoticeReasonEndOfTerm,
	}
}

func TestCheckoutValid(t *testing.T) {
	f := validCheckoutForm()
	assert.True(t, f.Validate().Valid())
}

func TestCheckoutDateOrdering(t *testing.T) {
	t.Run("notice in future fails", func(t *testing.T) {
		f := validCheckoutForm()
		f.NoticeDate = day(1)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("notice_date"))
	})
	t.Run("move out before notice fails", func(t *testing.T) {
		f := validCheckoutForm()
		f.MoveOutDate = day(-60)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("move_out_date"))
	})
	t.Run("notice today is allowed", func(t *testing.T) {
		f := validCheckoutForm()
		f.NoticeDate = day(0)
		f.MoveOutDate = day(0)
		assert.True(t, f.Validate().Valid())
	})
	t.Run("inspection after move out fails", func(t *testing.T) {
		f := validCheckoutForm()
		f.InspectionDate = day(45)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("move_out_date"))
	})
	t.Run("inspection omitted is fine", func(t *testing.T) {
		f := validCheckoutForm()
		f.InspectionDate = ""
		assert.True(t, f.Validate().Valid())
	})
}

func TestCheckoutReasonNotes(t *testing.T) {
	f := validCheckoutForm()
	f.NoticeReason = domain.NoticeReasonOther
	rep := f.Validate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("reason_notes"))

	f.ReasonNotes = "owner is selling the unit"
	assert.True(t, f.Validate().Valid())
}

func TestRefundMethodDecisionTable(t *testing.T) {
	base := func(m domain.RefundMethod) RefundForm {
		return RefundForm{Method: m, Amount: validator.Num(5000)}
	}

	t.Run("bank transfer requires bank details and valid iban", func(t *testing.T) {
		f := base(domain.RefundMethodBankTransfer)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		m := rep.ErrorMap()
		assert.Contains(t, m, "bank_name")
		assert.Contains(t, m, "account_holder")
		assert.Contains(t, m, "iban")
	})
	t.Run("bank transfer with bad iban fails", func(t *testing.T) {
		f := base(domain.RefundMethodBankTransfer)
		f.BankName = "Emirates NBD"
		f.AccountHolder = "Sara Khan"
		f.IBAN = "GB070331234567890123456"
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("iban"))
	})
	t.Run("bank transfer complete passes", func(t *testing.T) {
		f := base(domain.RefundMethodBankTransfer)
		f.BankName = "Emirates NBD"
		f.AccountHolder = "Sara Khan"
		f.IBAN = "AE070331234567890123456"
		assert.True(t, f.Validate().Valid())
	})
	t.Run("cash requires acknowledgment", func(t *testing.T) {
		f := base(domain.RefundMethodCash)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("cash_acknowledged"))

		f.CashAcknowledged = true
		assert.True(t, f.Validate().Valid())
	})
	t.Run("cheque needs nothing extra", func(t *testing.T) {
		f := base(domain.RefundMethodCheque)
		assert.True(t, f.Validate().Valid())
	})
	t.Run("missing amount fails", func(t *testing.T) {
		f := RefundForm{Method: domain.RefundMethodCheque}
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("amount"))
	})
}

func TestCheckoutToRecord(t *testing.T) {
	f := validCheckoutForm()
	f.InspectionDate = day(15)
	rec := f.ToRecord()

	assert.NotEqual(t, uuid.Nil, rec.PropertyID)
	assert.Equal(t, "1204", rec.UnitRef)
	assert.NotNil(t, rec.InspectionDate)
	assert.Equal(t, domain.NoticeReasonEndOfTerm, rec.NoticeReason)
}

func TestDefaultCheckoutForm(t *testing.T) {
	f := DefaultCheckoutForm()
	assert.Equal(t, day(0), f.NoticeDate)
	assert.Equal(t, domain.NoticeReasonEndOfTerm, f.NoticeReason)
}
