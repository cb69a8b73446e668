package forms

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// PdcForm is a post-dated cheque as submitted. Amount accepts a number or
// numeric string; a failed coercion reads as null and fails the range rule
// because the amount is mandatory.
type PdcForm struct {
	PropertyID   string               `json:"property_id"`
	LeaseRef     string               `json:"lease_ref"`
	ChequeNumber string               `json:"cheque_number"`
	BankName     string               `json:"bank_name"`
	Amount       validator.FlexNumber `json:"amount"`
	DueDate      string               `json:"due_date"`
	Status       domain.PdcStatus     `json:"status"`
	StatusNotes  string               `json:"status_notes"`
}

var pdcStatuses = []domain.PdcStatus{
	domain.PdcStatusReceived,
	domain.PdcStatusDeposited,
	domain.PdcStatusCleared,
	domain.PdcStatusBounced,
	domain.PdcStatusReplaced,
	domain.PdcStatusWithdrawn,
	domain.PdcStatusCancelled,
}

func pdcFieldRules() []validator.Rule[PdcForm] {
	return []validator.Rule[PdcForm]{
		{
			Key: "req.pdc.property", Name: "Required: Property", Kind: domain.RuleKindRequired,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("property_id", f.PropertyID, "Required: Property"))
			},
		},
		{
			Key: "fmt.pdc.property", Name: "Format: Property ID", Kind: domain.RuleKindFormat,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(uuidCheck("property_id", f.PropertyID, "Format: Property ID"))
			},
		},
		{
			Key: "req.pdc.cheque_number", Name: "Required: Cheque Number", Kind: domain.RuleKindRequired,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("cheque_number", f.ChequeNumber, "Required: Cheque Number"))
			},
		},
		{
			Key: "len.pdc.cheque_number", Name: "Length: Cheque Number", Kind: domain.RuleKindRange,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.LengthCheck("cheque_number", f.ChequeNumber, 1, 30, "Length: Cheque Number"))
			},
		},
		{
			Key: "req.pdc.bank", Name: "Required: Bank Name", Kind: domain.RuleKindRequired,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("bank_name", f.BankName, "Required: Bank Name"))
			},
		},
		{
			Key: "range.pdc.amount", Name: "Range: Amount", Kind: domain.RuleKindRange,
			Check: func(f *PdcForm) []validator.ValidationResult {
				r := validator.RangeCheck("amount", f.Amount.Float(), 0, math.MaxFloat64, true, "Range: Amount")
				// Zero is not a meaningful cheque amount.
				if r.Passed {
					if v := f.Amount.Float(); v != nil && *v == 0 {
						r.Passed = false
						r.ExpectedValue = "> 0"
						r.Message = "Range: Amount: amount must be greater than zero"
					}
				}
				return one(r)
			},
		},
		{
			Key: "req.pdc.due_date", Name: "Required: Due Date", Kind: domain.RuleKindRequired,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("due_date", f.DueDate, "Required: Due Date"))
			},
		},
		{
			Key: "fmt.pdc.due_date", Name: "Format: Due Date", Kind: domain.RuleKindFormat,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.DateCheck("due_date", f.DueDate, "Format: Due Date"))
			},
		},
		{
			Key: "enum.pdc.status", Name: "Enum: Status", Kind: domain.RuleKindFormat,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.EnumCheck("status", f.Status, pdcStatuses, "Enum: Status"))
			},
		},
		{
			Key: "len.pdc.notes", Name: "Length: Status Notes", Kind: domain.RuleKindRange,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(validator.LengthCheck("status_notes", f.StatusNotes, 0, 500, "Length: Status Notes"))
			},
		},
	}
}

// PdcSchema validates edits to an existing cheque. Due dates in the past are
// allowed here: a cheque already in the drawer keeps its date.
var PdcSchema = validator.Schema[PdcForm]{
	Entity: "pdc",
	Fields: pdcFieldRules(),
}

// PdcCreateSchema adds the creation-only rule that the due date must be
// today or later.
var PdcCreateSchema = validator.Schema[PdcForm]{
	Entity: "pdc",
	Fields: pdcFieldRules(),
	Cross: []validator.Rule[PdcForm]{
		{
			Key: "xf.pdc.due_not_past", Name: "Cross-field: Due Date Not In Past", Kind: domain.RuleKindCrossField,
			Check: func(f *PdcForm) []validator.ValidationResult {
				return one(dateNotBeforeToday("due_date", f.DueDate, "Cross-field: Due Date Not In Past"))
			},
		},
	},
}

// Validate runs the edit-mode schema.
func (f *PdcForm) Validate() *validator.Report {
	return PdcSchema.Validate(f)
}

// ValidateCreate runs the create-mode schema.
func (f *PdcForm) ValidateCreate() *validator.Report {
	return PdcCreateSchema.Validate(f)
}

// ToRecord maps the form onto a domain record. Call only after validation.
func (f *PdcForm) ToRecord() domain.PostDatedCheque {
	rec := domain.PostDatedCheque{
		LeaseRef:     strings.TrimSpace(f.LeaseRef),
		ChequeNumber: strings.TrimSpace(f.ChequeNumber),
		BankName:     strings.TrimSpace(f.BankName),
		Status:       f.Status,
		StatusNotes:  strings.TrimSpace(f.StatusNotes),
	}
	if id, err := uuid.Parse(f.PropertyID); err == nil {
		rec.PropertyID = id
	}
	if v := f.Amount.Float(); v != nil {
		rec.Amount = *v
	}
	if d, err := validator.ParseDate(f.DueDate); err == nil {
		rec.DueDate = d
	}
	return rec
}

// DefaultPdcForm returns create-mode initial values: due today, status
// RECEIVED.
func DefaultPdcForm() PdcForm {
	return PdcForm{
		DueDate: validator.Today().Format(validator.DateLayout),
		Status:  domain.PdcStatusReceived,
	}
}

// PdcFormFromRecord maps an existing cheque into form shape.
func PdcFormFromRecord(p *domain.PostDatedCheque) PdcForm {
	f := PdcForm{
		PropertyID:   p.PropertyID.String(),
		LeaseRef:     p.LeaseRef,
		ChequeNumber: p.ChequeNumber,
		BankName:     p.BankName,
		Amount:       validator.Num(p.Amount),
		Status:       p.Status,
		StatusNotes:  p.StatusNotes,
	}
	if !p.DueDate.IsZero() {
		f.DueDate = p.DueDate.Format(validator.DateLayout)
	}
	if f.Status == "" {
		f.Status = domain.PdcStatusReceived
	}
	return f
}
