package forms

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

func validPdcForm() PdcForm {
	return PdcForm{
		PropertyID:   uuid.NewString(),
		LeaseRef:     "L-2026-0042",
		ChequeNumber: "000123",
		BankName:     "ADCB",
		Amount:       validator.Num(25000),
		DueDate:      day(60),
		Status:       domain.PdcStatusReceived,
	}
}

func TestPdcValid(t *testing.T) {
	f := validPdcForm()
	assert.True(t, f.Validate().Valid())
	assert.True(t, f.ValidateCreate().Valid())
}

func TestPdcAmount(t *testing.T) {
	t.Run("missing fails", func(t *testing.T) {
		f := validPdcForm()
		f.Amount = validator.FlexNumber{}
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("amount"))
	})
	t.Run("zero fails", func(t *testing.T) {
		f := validPdcForm()
		f.Amount = validator.Num(0)
		rep := f.Validate()
		assert.False(t, rep.Valid())
		assert.True(t, rep.HasError("amount"))
	})
	t.Run("negative fails", func(t *testing.T) {
		f := validPdcForm()
		f.Amount = validator.Num(-10)
		assert.False(t, f.Validate().Valid())
	})
	t.Run("numeric string accepted over the wire", func(t *testing.T) {
		var f PdcForm
		require.NoError(t, json.Unmarshal([]byte(`{"amount": "25000"}`), &f))
		require.NotNil(t, f.Amount.Float())
		assert.Equal(t, 25000.0, *f.Amount.Float())
	})
}

func TestPdcDueDateCreateOnly(t *testing.T) {
	f := validPdcForm()
	f.DueDate = day(-10)

	// an existing cheque keeps its past due date; creation rejects it
	assert.True(t, f.Validate().Valid())
	rep := f.ValidateCreate()
	assert.False(t, rep.Valid())
	assert.True(t, rep.HasError("due_date"))
}

func TestPdcToRecord(t *testing.T) {
	f := validPdcForm()
	rec := f.ToRecord()

	assert.NotEqual(t, uuid.Nil, rec.PropertyID)
	assert.Equal(t, 25000.0, rec.Amount)
	assert.Equal(t, domain.PdcStatusReceived, rec.Status)
	assert.False(t, rec.DueDate.IsZero())
}

func TestDefaultPdcForm(t *testing.T) {
	f := DefaultPdcForm()
	assert.Equal(t, domain.PdcStatusReceived, f.Status)
	assert.Equal(t, day(0), f.DueDate)
}

func TestPdcFormFromRecord(t *testing.T) {
	rec := domain.PostDatedCheque{
		PropertyID:   uuid.New(),
		ChequeNumber: "000123",
		BankName:     "ADCB",
		Amount:       25000,
	}
	f := PdcFormFromRecord(&rec)
	assert.Equal(t, domain.PdcStatusReceived, f.Status)
	require.NotNil(t, f.Amount.Float())
	assert.Equal(t, 25000.0, *f.Amount.Float())
}
