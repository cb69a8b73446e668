package forms

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// ComplianceRequirementForm is a recurring compliance obligation as
// submitted. An empty ApplicableProperties list means "all properties" and
// normalizes to nil on the way out.
type ComplianceRequirementForm struct {
	Name                 string                     `json:"name"`
	Category             domain.ComplianceCategory  `json:"category"`
	Frequency            domain.ComplianceFrequency `json:"frequency"`
	ApplicableProperties []string                   `json:"applicable_properties"`
	Status               domain.ComplianceStatus    `json:"status"`
}

var complianceCategories = []domain.ComplianceCategory{
	domain.ComplianceCategoryFireSafety,
	domain.ComplianceCategoryElevator,
	domain.ComplianceCategoryHVAC,
	domain.ComplianceCategoryElectrical,
	domain.ComplianceCategoryPlumbing,
	domain.ComplianceCategoryCivilDefense,
	domain.ComplianceCategoryGeneral,
}

var complianceFrequencies = []domain.ComplianceFrequency{
	domain.ComplianceFrequencyMonthly,
	domain.ComplianceFrequencyQuarterly,
	domain.ComplianceFrequencySemiAnnual,
	domain.ComplianceFrequencyAnnual,
}

var complianceStatuses = []domain.ComplianceStatus{
	domain.ComplianceStatusActive,
	domain.ComplianceStatusInactive,
}

// ComplianceRequirementSchema validates a compliance requirement form.
var ComplianceRequirementSchema = validator.Schema[ComplianceRequirementForm]{
	Entity: "compliance_requirement",
	Fields: []validator.Rule[ComplianceRequirementForm]{
		{
			Key: "req.compliance.name", Name: "Required: Name", Kind: domain.RuleKindRequired,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("name", f.Name, "Required: Name"))
			},
		},
		{
			Key: "len.compliance.name", Name: "Length: Name", Kind: domain.RuleKindRange,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.LengthCheck("name", f.Name, 3, 120, "Length: Name"))
			},
		},
		{
			Key: "req.compliance.category", Name: "Required: Category", Kind: domain.RuleKindRequired,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("category", string(f.Category), "Required: Category"))
			},
		},
		{
			Key: "enum.compliance.category", Name: "Enum: Category", Kind: domain.RuleKindFormat,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.EnumCheck("category", f.Category, complianceCategories, "Enum: Category"))
			},
		},
		{
			Key: "req.compliance.frequency", Name: "Required: Frequency", Kind: domain.RuleKindRequired,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("frequency", string(f.Frequency), "Required: Frequency"))
			},
		},
		{
			Key: "enum.compliance.frequency", Name: "Enum: Frequency", Kind: domain.RuleKindFormat,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.EnumCheck("frequency", f.Frequency, complianceFrequencies, "Enum: Frequency"))
			},
		},
		{
			Key: "enum.compliance.status", Name: "Enum: Status", Kind: domain.RuleKindFormat,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				return one(validator.EnumCheck("status", f.Status, complianceStatuses, "Enum: Status"))
			},
		},
		{
			Key: "fmt.compliance.properties", Name: "Format: Applicable Properties", Kind: domain.RuleKindFormat,
			Check: func(f *ComplianceRequirementForm) []validator.ValidationResult {
				results := make([]validator.ValidationResult, 0, len(f.ApplicableProperties))
				for i, id := range f.ApplicableProperties {
					fp := fmt.Sprintf("applicable_properties[%d]", i)
					results = append(results, uuidCheck(fp, id, "Format: Applicable Properties"))
				}
				return results
			},
		},
	},
}

// Validate runs the compliance requirement schema.
func (f *ComplianceRequirementForm) Validate() *validator.Report {
	return ComplianceRequirementSchema.Validate(f)
}

// PropertyIDs returns the parsed applicable-property IDs, normalizing an
// empty list to nil ("all properties"). Call only after Validate passes.
func (f *ComplianceRequirementForm) PropertyIDs() []uuid.UUID {
	if len(f.ApplicableProperties) == 0 {
		return nil
	}
	out := make([]uuid.UUID, 0, len(f.ApplicableProperties))
	for _, s := range f.ApplicableProperties {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ToRecord maps the form onto a domain record.
func (f *ComplianceRequirementForm) ToRecord() domain.ComplianceRequirement {
	return domain.ComplianceRequirement{
		Name:                 strings.TrimSpace(f.Name),
		Category:             f.Category,
		Frequency:            f.Frequency,
		ApplicableProperties: f.PropertyIDs(),
		Status:               f.Status,
	}
}

// DefaultComplianceRequirementForm returns create-mode initial values.
func DefaultComplianceRequirementForm() ComplianceRequirementForm {
	return ComplianceRequirementForm{
		Category:  domain.ComplianceCategoryGeneral,
		Frequency: domain.ComplianceFrequencyAnnual,
		Status:    domain.ComplianceStatusActive,
	}
}

// ComplianceRequirementFormFromRecord maps an existing requirement into form
// shape; a nil applicable-properties list stays empty ("all").
func ComplianceRequirementFormFromRecord(r *domain.ComplianceRequirement) ComplianceRequirementForm {
	f := ComplianceRequirementForm{
		Name:      r.Name,
		Category:  r.Category,
		Frequency: r.Frequency,
		Status:    r.Status,
	}
	for _, id := range r.ApplicableProperties {
		f.ApplicableProperties = append(f.ApplicableProperties, id.String())
	}
	if f.Status == "" {
		f.Status = domain.ComplianceStatusActive
	}
	return f
}
