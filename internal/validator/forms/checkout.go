package forms

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// CheckoutForm is the move-out notice step of the checkout wizard.
type CheckoutForm struct {
	PropertyID     string              `json:"property_id"`
	UnitRef        string              `json:"unit_ref"`
	NoticeDate     string              `json:"notice_date"`
	MoveOutDate    string              `json:"move_out_date"`
	InspectionDate string              `json:"inspection_date"`
	NoticeReason   domain.NoticeReason `json:"notice_reason"`
	ReasonNotes    string              `json:"reason_notes"`
}

// RefundForm is the deposit-refund step of the checkout wizard. The required
// sub-fields depend on the selected method.
type RefundForm struct {
	Method          domain.RefundMethod  `json:"method"`
	BankName        string               `json:"bank_name"`
	AccountHolder   string               `json:"account_holder"`
	IBAN            string               `json:"iban"`
	CashAcknowledged bool                `json:"cash_acknowledged"`
	Amount          validator.FlexNumber `json:"amount"`
}

var noticeReasons = []domain.NoticeReason{
	domain.NoticeReasonEndOfTerm,
	domain.NoticeReasonRelocation,
	domain.NoticeReasonPurchase,
	domain.NoticeReasonOther,
}

var refundMethods = []domain.RefundMethod{
	domain.RefundMethodBankTransfer,
	domain.RefundMethodCash,
	domain.RefundMethodCheque,
}

// CheckoutSchema validates the notice step. Date ordering: notice ≤ today,
// notice ≤ move-out, inspection ≤ move-out.
var CheckoutSchema = validator.Schema[CheckoutForm]{
	Entity: "checkout",
	Fields: []validator.Rule[CheckoutForm]{
		{
			Key: "req.checkout.property", Name: "Required: Property", Kind: domain.RuleKindRequired,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("property_id", f.PropertyID, "Required: Property"))
			},
		},
		{
			Key: "fmt.checkout.property", Name: "Format: Property ID", Kind: domain.RuleKindFormat,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(uuidCheck("property_id", f.PropertyID, "Format: Property ID"))
			},
		},
		{
			Key: "req.checkout.unit", Name: "Required: Unit", Kind: domain.RuleKindRequired,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("unit_ref", f.UnitRef, "Required: Unit"))
			},
		},
		{
			Key: "req.checkout.notice_date", Name: "Required: Notice Date", Kind: domain.RuleKindRequired,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("notice_date", f.NoticeDate, "Required: Notice Date"))
			},
		},
		{
			Key: "fmt.checkout.notice_date", Name: "Format: Notice Date", Kind: domain.RuleKindFormat,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.DateCheck("notice_date", f.NoticeDate, "Format: Notice Date"))
			},
		},
		{
			Key: "req.checkout.move_out_date", Name: "Required: Move-Out Date", Kind: domain.RuleKindRequired,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("move_out_date", f.MoveOutDate, "Required: Move-Out Date"))
			},
		},
		{
			Key: "fmt.checkout.move_out_date", Name: "Format: Move-Out Date", Kind: domain.RuleKindFormat,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.DateCheck("move_out_date", f.MoveOutDate, "Format: Move-Out Date"))
			},
		},
		{
			Key: "fmt.checkout.inspection_date", Name: "Format: Inspection Date", Kind: domain.RuleKindFormat,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.DateCheck("inspection_date", f.InspectionDate, "Format: Inspection Date"))
			},
		},
		{
			Key: "req.checkout.reason", Name: "Required: Notice Reason", Kind: domain.RuleKindRequired,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("notice_reason", string(f.NoticeReason), "Required: Notice Reason"))
			},
		},
		{
			Key: "enum.checkout.reason", Name: "Enum: Notice Reason", Kind: domain.RuleKindFormat,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(validator.EnumCheck("notice_reason", f.NoticeReason, noticeReasons, "Enum: Notice Reason"))
			},
		},
	},
	Cross: []validator.Rule[CheckoutForm]{
		{
			Key: "xf.checkout.notice_not_future", Name: "Cross-field: Notice Date Not In Future", Kind: domain.RuleKindCrossField,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(dateNotAfterToday("notice_date", f.NoticeDate, "Cross-field: Notice Date Not In Future"))
			},
		},
		{
			Key: "xf.checkout.move_out_after_notice", Name: "Cross-field: Move-Out After Notice", Kind: domain.RuleKindCrossField,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				return one(dateOrder("notice_date", f.NoticeDate, "move_out_date", f.MoveOutDate, "Cross-field: Move-Out After Notice"))
			},
		},
		{
			Key: "xf.checkout.inspection_before_move_out", Name: "Cross-field: Inspection Before Move-Out", Kind: domain.RuleKindCrossField,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				// inspection ≤ move-out, i.e. move-out on or after inspection
				return one(dateOrder("inspection_date", f.InspectionDate, "move_out_date", f.MoveOutDate, "Cross-field: Inspection Before Move-Out"))
			},
		},
		{
			Key: "xf.checkout.reason_notes", Name: "Cross-field: Reason Notes For OTHER", Kind: domain.RuleKindCrossField,
			Check: func(f *CheckoutForm) []validator.ValidationResult {
				if f.NoticeReason != domain.NoticeReasonOther {
					return one(validator.ValidationResult{
						Passed: true, FieldPath: "reason_notes",
						Message: "Cross-field: Reason Notes For OTHER: reason is not OTHER, notes optional",
					})
				}
				passed := strings.TrimSpace(f.ReasonNotes) != ""
				msg := "Cross-field: Reason Notes For OTHER: notes provided"
				if !passed {
					msg = "Cross-field: Reason Notes For OTHER: reason_notes is required when notice_reason is OTHER"
				}
				return one(validator.ValidationResult{
					Passed: passed, FieldPath: "reason_notes",
					ExpectedValue: "non-empty notes", ActualValue: f.ReasonNotes, Message: msg,
				})
			},
		},
	},
}

// RefundSchema validates the refund step. The method decision table:
//
//	BANK_TRANSFER → bank name, account holder, valid UAE IBAN
//	CASH          → cash_acknowledged must be true
//	CHEQUE        → nothing extra
var RefundSchema = validator.Schema[RefundForm]{
	Entity: "refund",
	Fields: []validator.Rule[RefundForm]{
		{
			Key: "req.refund.method", Name: "Required: Refund Method", Kind: domain.RuleKindRequired,
			Check: func(f *RefundForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("method", string(f.Method), "Required: Refund Method"))
			},
		},
		{
			Key: "enum.refund.method", Name: "Enum: Refund Method", Kind: domain.RuleKindFormat,
			Check: func(f *RefundForm) []validator.ValidationResult {
				return one(validator.EnumCheck("method", f.Method, refundMethods, "Enum: Refund Method"))
			},
		},
		{
			Key: "range.refund.amount", Name: "Range: Refund Amount", Kind: domain.RuleKindRange,
			Check: func(f *RefundForm) []validator.ValidationResult {
				return one(validator.RangeCheck("amount", f.Amount.Float(), 0, math.MaxFloat64, true, "Range: Refund Amount"))
			},
		},
	},
	Cross: []validator.Rule[RefundForm]{
		{
			Key: "xf.refund.bank_transfer", Name: "Cross-field: Bank Transfer Details", Kind: domain.RuleKindCrossField,
			Check: func(f *RefundForm) []validator.ValidationResult {
				if f.Method != domain.RefundMethodBankTransfer {
					return one(validator.ValidationResult{
						Passed: true, FieldPath: "method",
						Message: "Cross-field: Bank Transfer Details: method is not BANK_TRANSFER, skipping",
					})
				}
				results := []validator.ValidationResult{
					validator.RequiredCheck("bank_name", f.BankName, "Cross-field: Bank Transfer Details"),
					validator.RequiredCheck("account_holder", f.AccountHolder, "Cross-field: Bank Transfer Details"),
				}
				// IBAN must be present AND syntactically valid for a transfer.
				if strings.TrimSpace(f.IBAN) == "" {
					results = append(results, validator.ValidationResult{
						Passed: false, FieldPath: "iban",
						ExpectedValue: "AE + 21 digits", ActualValue: f.IBAN,
						Message: "Cross-field: Bank Transfer Details: iban is required for bank transfers",
					})
				} else {
					results = append(results, ibanCheck("iban", f.IBAN, "Cross-field: Bank Transfer Details"))
				}
				return results
			},
		},
		{
			Key: "xf.refund.cash_ack", Name: "Cross-field: Cash Acknowledgment", Kind: domain.RuleKindCrossField,
			Check: func(f *RefundForm) []validator.ValidationResult {
				if f.Method != domain.RefundMethodCash {
					return one(validator.ValidationResult{
						Passed: true, FieldPath: "cash_acknowledged",
						Message: "Cross-field: Cash Acknowledgment: method is not CASH, skipping",
					})
				}
				passed := f.CashAcknowledged
				msg := "Cross-field: Cash Acknowledgment: acknowledgment recorded"
				if !passed {
					msg = "Cross-field: Cash Acknowledgment: cash_acknowledged must be true for cash refunds"
				}
				return one(validator.ValidationResult{
					Passed: passed, FieldPath: "cash_acknowledged",
					ExpectedValue: "true", ActualValue: boolString(f.CashAcknowledged), Message: msg,
				})
			},
		},
	},
}

// Validate runs the checkout notice schema.
func (f *CheckoutForm) Validate() *validator.Report {
	return CheckoutSchema.Validate(f)
}

// Validate runs the refund schema.
func (f *RefundForm) Validate() *validator.Report {
	return RefundSchema.Validate(f)
}

// ToRecord maps the notice form onto a domain record. Call only after
// validation.
func (f *CheckoutForm) ToRecord() domain.CheckoutCase {
	rec := domain.CheckoutCase{
		UnitRef:      strings.TrimSpace(f.UnitRef),
		NoticeReason: f.NoticeReason,
		ReasonNotes:  strings.TrimSpace(f.ReasonNotes),
	}
	if id, err := uuid.Parse(f.PropertyID); err == nil {
		rec.PropertyID = id
	}
	if d, err := validator.ParseDate(f.NoticeDate); err == nil {
		rec.NoticeDate = d
	}
	if d, err := validator.ParseDate(f.MoveOutDate); err == nil {
		rec.MoveOutDate = d
	}
	if f.InspectionDate != "" {
		if d, err := validator.ParseDate(f.InspectionDate); err == nil {
			rec.InspectionDate = &d
		}
	}
	return rec
}

// DefaultCheckoutForm returns create-mode initial values: notice dated today.
func DefaultCheckoutForm() CheckoutForm {
	return CheckoutForm{
		NoticeDate:   validator.Today().Format(validator.DateLayout),
		NoticeReason: domain.NoticeReasonEndOfTerm,
	}
}

// CheckoutFormFromRecord maps an existing checkout into form shape.
func CheckoutFormFromRecord(c *domain.CheckoutCase) CheckoutForm {
	f := CheckoutForm{
		PropertyID:   c.PropertyID.String(),
		UnitRef:      c.UnitRef,
		NoticeReason: c.NoticeReason,
		ReasonNotes:  c.ReasonNotes,
	}
	if !c.NoticeDate.IsZero() {
		f.NoticeDate = c.NoticeDate.Format(validator.DateLayout)
	}
	if !c.MoveOutDate.IsZero() {
		f.MoveOutDate = c.MoveOutDate.Format(validator.DateLayout)
	}
	if c.InspectionDate != nil {
		f.InspectionDate = c.InspectionDate.Format(validator.DateLayout)
	}
	if f.NoticeReason == "" {
		f.NoticeReason = domain.NoticeReasonEndOfTerm
	}
	return f
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
