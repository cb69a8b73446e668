package forms

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// ViolationForm records a breach observed on a property. FineAmount accepts
// a number or numeric string; a failed coercion reads as null.
type ViolationForm struct {
	PropertyID    string               `json:"property_id"`
	ViolationDate string               `json:"violation_date"`
	Description   string               `json:"description"`
	FineAmount    validator.FlexNumber `json:"fine_amount"`
	FineStatus    domain.FineStatus    `json:"fine_status"`
}

var fineStatuses = []domain.FineStatus{
	domain.FineStatusPending,
	domain.FineStatusPaid,
	domain.FineStatusWaived,
	domain.FineStatusDisputed,
}

// ViolationSchema validates a violation form.
var ViolationSchema = validator.Schema[ViolationForm]{
	Entity: "violation",
	Fields: []validator.Rule[ViolationForm]{
		{
			Key: "req.violation.property", Name: "Required: Property", Kind: domain.RuleKindRequired,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("property_id", f.PropertyID, "Required: Property"))
			},
		},
		{
			Key: "fmt.violation.property", Name: "Format: Property ID", Kind: domain.RuleKindFormat,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(uuidCheck("property_id", f.PropertyID, "Format: Property ID"))
			},
		},
		{
			Key: "req.violation.date", Name: "Required: Violation Date", Kind: domain.RuleKindRequired,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("violation_date", f.ViolationDate, "Required: Violation Date"))
			},
		},
		{
			Key: "fmt.violation.date", Name: "Format: Violation Date", Kind: domain.RuleKindFormat,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.DateCheck("violation_date", f.ViolationDate, "Format: Violation Date"))
			},
		},
		{
			Key: "req.violation.description", Name: "Required: Description", Kind: domain.RuleKindRequired,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("description", f.Description, "Required: Description"))
			},
		},
		{
			Key: "len.violation.description", Name: "Length: Description", Kind: domain.RuleKindRange,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.LengthCheck("description", f.Description, 5, 2000, "Length: Description"))
			},
		},
		{
			Key: "range.violation.fine", Name: "Range: Fine Amount", Kind: domain.RuleKindRange,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.RangeCheck("fine_amount", f.FineAmount.Float(), 0, math.MaxFloat64, false, "Range: Fine Amount"))
			},
		},
		{
			Key: "enum.violation.fine_status", Name: "Enum: Fine Status", Kind: domain.RuleKindFormat,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(validator.EnumCheck("fine_status", f.FineStatus, fineStatuses, "Enum: Fine Status"))
			},
		},
	},
	Cross: []validator.Rule[ViolationForm]{
		{
			Key: "xf.violation.date_not_future", Name: "Cross-field: Violation Date Not In Future", Kind: domain.RuleKindCrossField,
			Check: func(f *ViolationForm) []validator.ValidationResult {
				return one(dateNotAfterToday("violation_date", f.ViolationDate, "Cross-field: Violation Date Not In Future"))
			},
		},
	},
}

// Validate runs the violation schema.
func (f *ViolationForm) Validate() *validator.Report {
	return ViolationSchema.Validate(f)
}

// ToRecord maps the form onto a domain record. Call only after validation.
func (f *ViolationForm) ToRecord() domain.Violation {
	rec := domain.Violation{
		Description: strings.TrimSpace(f.Description),
		FineAmount:  f.FineAmount.Float(),
		FineStatus:  f.FineStatus,
	}
	if id, err := uuid.Parse(f.PropertyID); err == nil {
		rec.PropertyID = id
	}
	if d, err := validator.ParseDate(f.ViolationDate); err == nil {
		rec.ViolationDate = d
	}
	return rec
}

// DefaultViolationForm returns create-mode initial values: dated today,
// fine pending.
func DefaultViolationForm() ViolationForm {
	return ViolationForm{
		ViolationDate: validator.Today().Format(validator.DateLayout),
		FineStatus:    domain.FineStatusPending,
	}
}

// ViolationFormFromRecord maps an existing violation into form shape.
func ViolationFormFromRecord(v *domain.Violation) ViolationForm {
	f := ViolationForm{
		PropertyID:  v.PropertyID.String(),
		Description: v.Description,
		FineStatus:  v.FineStatus,
	}
	if !v.ViolationDate.IsZero() {
		f.ViolationDate = v.ViolationDate.Format(validator.DateLayout)
	}
	if v.FineAmount != nil {
		f.FineAmount = validator.Num(*v.FineAmount)
	}
	if f.FineStatus == "" {
		f.FineStatus = domain.FineStatusPending
	}
	return f
}
