package forms

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// InspectionForm is a property inspection as submitted. Result is empty
// until an outcome is recorded.
type InspectionForm struct {
	PropertyID    string                  `json:"property_id"`
	RequirementID string                  `json:"requirement_id"`
	ScheduledDate string                  `json:"scheduled_date"`
	Inspector     string                  `json:"inspector"`
	Status        domain.InspectionStatus `json:"status"`
	Result        domain.InspectionResult `json:"result"`
	IssuesFound   string                  `json:"issues_found"`
}

var inspectionStatuses = []domain.InspectionStatus{
	domain.InspectionStatusScheduled,
	domain.InspectionStatusInProgress,
	domain.InspectionStatusPassed,
	domain.InspectionStatusFailed,
	domain.InspectionStatusCancelled,
}

var inspectionResults = []domain.InspectionResult{
	domain.InspectionResultPassed,
	domain.InspectionResultFailed,
	domain.InspectionResultPartialPass,
}

func inspectionFieldRules() []validator.Rule[InspectionForm] {
	return []validator.Rule[InspectionForm]{
		{
			Key: "req.inspection.property", Name: "Required: Property", Kind: domain.RuleKindRequired,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("property_id", f.PropertyID, "Required: Property"))
			},
		},
		{
			Key: "fmt.inspection.property", Name: "Format: Property ID", Kind: domain.RuleKindFormat,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(uuidCheck("property_id", f.PropertyID, "Format: Property ID"))
			},
		},
		{
			Key: "fmt.inspection.requirement", Name: "Format: Requirement ID", Kind: domain.RuleKindFormat,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(uuidCheck("requirement_id", f.RequirementID, "Format: Requirement ID"))
			},
		},
		{
			Key: "req.inspection.scheduled_date", Name: "Required: Scheduled Date", Kind: domain.RuleKindRequired,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("scheduled_date", f.ScheduledDate, "Required: Scheduled Date"))
			},
		},
		{
			Key: "fmt.inspection.scheduled_date", Name: "Format: Scheduled Date", Kind: domain.RuleKindFormat,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(validator.DateCheck("scheduled_date", f.ScheduledDate, "Format: Scheduled Date"))
			},
		},
		{
			Key: "enum.inspection.status", Name: "Enum: Status", Kind: domain.RuleKindFormat,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(validator.EnumCheck("status", f.Status, inspectionStatuses, "Enum: Status"))
			},
		},
		{
			Key: "enum.inspection.result", Name: "Enum: Result", Kind: domain.RuleKindFormat,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(validator.EnumCheck("result", f.Result, inspectionResults, "Enum: Result"))
			},
		},
	}
}

// inspectionCrossRules encodes the inspection-results decision table:
//
//	status PASSED or FAILED → result required
//	other statuses          → result optional
//	result FAILED or PARTIAL_PASS → issues_found required
func inspectionCrossRules() []validator.Rule[InspectionForm] {
	return []validator.Rule[InspectionForm]{
		{
			Key: "xf.inspection.result_required", Name: "Cross-field: Result Required For Terminal Status", Kind: domain.RuleKindCrossField,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				if !f.Status.Terminal() {
					return one(validator.ValidationResult{
						Passed: true, FieldPath: "result",
						Message: "Cross-field: Result Required For Terminal Status: status not terminal, result optional",
					})
				}
				passed := f.Result != ""
				msg := "Cross-field: Result Required For Terminal Status: result recorded"
				if !passed {
					msg = "Cross-field: Result Required For Terminal Status: result is required once status is PASSED or FAILED"
				}
				return one(validator.ValidationResult{
					Passed: passed, FieldPath: "result",
					ExpectedValue: "non-empty result", ActualValue: string(f.Result), Message: msg,
				})
			},
		},
		{
			Key: "xf.inspection.issues_required", Name: "Cross-field: Issues Required On Failure", Kind: domain.RuleKindCrossField,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				if !f.Result.RequiresIssues() {
					return one(validator.ValidationResult{
						Passed: true, FieldPath: "issues_found",
						Message: "Cross-field: Issues Required On Failure: result does not demand issues, skipping",
					})
				}
				passed := strings.TrimSpace(f.IssuesFound) != ""
				msg := "Cross-field: Issues Required On Failure: issues recorded"
				if !passed {
					msg = "Cross-field: Issues Required On Failure: issues_found is required when result is FAILED or PARTIAL_PASS"
				}
				return one(validator.ValidationResult{
					Passed: passed, FieldPath: "issues_found",
					ExpectedValue: "non-empty issues list", ActualValue: f.IssuesFound, Message: msg,
				})
			},
		},
	}
}

// InspectionSchema validates edits to an existing inspection. The scheduled
// date may lie in the past here: only creation pins it to today or later.
var InspectionSchema = validator.Schema[InspectionForm]{
	Entity: "inspection",
	Fields: inspectionFieldRules(),
	Cross:  inspectionCrossRules(),
}

// InspectionCreateSchema adds the creation-only rule that the scheduled date
// must be today or later.
var InspectionCreateSchema = validator.Schema[InspectionForm]{
	Entity: "inspection",
	Fields: inspectionFieldRules(),
	Cross: append([]validator.Rule[InspectionForm]{
		{
			Key: "xf.inspection.scheduled_not_past", Name: "Cross-field: Scheduled Date Not In Past", Kind: domain.RuleKindCrossField,
			Check: func(f *InspectionForm) []validator.ValidationResult {
				return one(dateNotBeforeToday("scheduled_date", f.ScheduledDate, "Cross-field: Scheduled Date Not In Past"))
			},
		},
	}, inspectionCrossRules()...),
}

// Validate runs the edit-mode schema.
func (f *InspectionForm) Validate() *validator.Report {
	return InspectionSchema.Validate(f)
}

// ValidateCreate runs the create-mode schema.
func (f *InspectionForm) ValidateCreate() *validator.Report {
	return InspectionCreateSchema.Validate(f)
}

// ToRecord maps the form onto a domain record. Call only after validation.
func (f *InspectionForm) ToRecord() domain.Inspection {
	rec := domain.Inspection{
		Inspector:   strings.TrimSpace(f.Inspector),
		Status:      f.Status,
		IssuesFound: strings.TrimSpace(f.IssuesFound),
	}
	if id, err := uuid.Parse(f.PropertyID); err == nil {
		rec.PropertyID = id
	}
	if f.RequirementID != "" {
		if id, err := uuid.Parse(f.RequirementID); err == nil {
			rec.RequirementID = &id
		}
	}
	if d, err := validator.ParseDate(f.ScheduledDate); err == nil {
		rec.ScheduledDate = d
	}
	if f.Result != "" {
		r := f.Result
		rec.Result = &r
	}
	return rec
}

// DefaultInspectionForm returns create-mode initial values: scheduled today,
// status SCHEDULED.
func DefaultInspectionForm() InspectionForm {
	return InspectionForm{
		ScheduledDate: validator.Today().Format(validator.DateLayout),
		Status:        domain.InspectionStatusScheduled,
	}
}

// InspectionFormFromRecord maps an existing inspection into form shape.
func InspectionFormFromRecord(i *domain.Inspection) InspectionForm {
	f := InspectionForm{
		PropertyID:  i.PropertyID.String(),
		Inspector:   i.Inspector,
		Status:      i.Status,
		IssuesFound: i.IssuesFound,
	}
	if i.RequirementID != nil {
		f.RequirementID = i.RequirementID.String()
	}
	if !i.ScheduledDate.IsZero() {
		f.ScheduledDate = i.ScheduledDate.Format(validator.DateLayout)
	}
	if i.Result != nil {
		f.Result = *i.Result
	}
	if f.Status == "" {
		f.Status = domain.InspectionStatusScheduled
	}
	return f
}

// CompletedAt derives the completion timestamp for terminal statuses.
func (f *InspectionForm) CompletedAt(now time.Time) *time.Time {
	if !f.Status.Terminal() {
		return nil
	}
	t := now.UTC()
	return &t
}
