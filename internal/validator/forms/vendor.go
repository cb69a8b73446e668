package forms

import (
	"fmt"
	"strings"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// VendorForm is a service-provider record as submitted. The phone field is
// lenient: any raw value that FormatToE164 can normalize is accepted, so
// local 05X numbers pass here even though the strict +971 rule would reject
// them.
type VendorForm struct {
	Name          string                `json:"name"`
	Category      domain.VendorCategory `json:"category"`
	ContactPhone  string                `json:"contact_phone"`
	ContactEmail  string                `json:"contact_email"`
	TRN           string                `json:"trn"`
	LicenseNumber string                `json:"license_number"`
	IsActive      bool                  `json:"is_active"`
}

var vendorCategories = []domain.VendorCategory{
	domain.VendorCategoryMaintenance,
	domain.VendorCategoryCleaning,
	domain.VendorCategorySecurity,
	domain.VendorCategoryLandscaping,
	domain.VendorCategoryPestControl,
	domain.VendorCategoryOther,
}

// VendorSchema validates a vendor form.
var VendorSchema = validator.Schema[VendorForm]{
	Entity: "vendor",
	Fields: []validator.Rule[VendorForm]{
		{
			Key: "req.vendor.name", Name: "Required: Name", Kind: domain.RuleKindRequired,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("name", f.Name, "Required: Name"))
			},
		},
		{
			Key: "len.vendor.name", Name: "Length: Name", Kind: domain.RuleKindRange,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(validator.LengthCheck("name", f.Name, 2, 120, "Length: Name"))
			},
		},
		{
			Key: "req.vendor.category", Name: "Required: Category", Kind: domain.RuleKindRequired,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("category", string(f.Category), "Required: Category"))
			},
		},
		{
			Key: "enum.vendor.category", Name: "Enum: Category", Kind: domain.RuleKindFormat,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(validator.EnumCheck("category", f.Category, vendorCategories, "Enum: Category"))
			},
		},
		{
			Key: "fmt.vendor.phone", Name: "Format: Contact Phone", Kind: domain.RuleKindFormat,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(lenientPhoneCheck("contact_phone", f.ContactPhone, "Format: Contact Phone"))
			},
		},
		{
			Key: "fmt.vendor.email", Name: "Format: Contact Email", Kind: domain.RuleKindFormat,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(emailCheck("contact_email", f.ContactEmail, "Format: Contact Email"))
			},
		},
		{
			Key: "fmt.vendor.trn", Name: "Format: TRN", Kind: domain.RuleKindFormat,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(trnCheck("trn", f.TRN, "Format: TRN"))
			},
		},
		{
			Key: "len.vendor.license", Name: "Length: License Number", Kind: domain.RuleKindRange,
			Check: func(f *VendorForm) []validator.ValidationResult {
				return one(validator.LengthCheck("license_number", f.LicenseNumber, 0, 50, "Length: License Number"))
			},
		},
	},
}

// Validate runs the vendor schema.
func (f *VendorForm) Validate() *validator.Report {
	return VendorSchema.Validate(f)
}

// ToRecord maps the form onto a domain record, normalizing the phone to E.164
// when it can be. Call only after validation.
func (f *VendorForm) ToRecord() domain.Vendor {
	rec := domain.Vendor{
		Name:          strings.TrimSpace(f.Name),
		Category:      f.Category,
		ContactPhone:  strings.TrimSpace(f.ContactPhone),
		ContactEmail:  validator.NormalizeEmail(f.ContactEmail),
		TRN:           strings.TrimSpace(f.TRN),
		LicenseNumber: strings.TrimSpace(f.LicenseNumber),
		IsActive:      f.IsActive,
	}
	if e164, ok := validator.FormatToE164(f.ContactPhone); ok {
		rec.ContactPhone = e164
	}
	return rec
}

// DefaultVendorForm returns create-mode initial values: active, trade OTHER.
func DefaultVendorForm() VendorForm {
	return VendorForm{
		Category: domain.VendorCategoryOther,
		IsActive: true,
	}
}

// VendorFormFromRecord maps an existing vendor into form shape.
func VendorFormFromRecord(v *domain.Vendor) VendorForm {
	f := VendorForm{
		Name:          v.Name,
		Category:      v.Category,
		ContactPhone:  v.ContactPhone,
		ContactEmail:  v.ContactEmail,
		TRN:           v.TRN,
		LicenseNumber: v.LicenseNumber,
		IsActive:      v.IsActive,
	}
	if f.Category == "" {
		f.Category = domain.VendorCategoryOther
	}
	return f
}

// lenientPhoneCheck passes anything FormatToE164 can turn into an
// international number. Empty values pass.
func lenientPhoneCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "phone number", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	_, ok := validator.FormatToE164(value)
	msg := fmt.Sprintf("%s: %s normalizes to an international number", ruleName, fieldPath)
	if !ok {
		msg = fmt.Sprintf("%s: %s cannot be normalized to an international number", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: ok, FieldPath: fieldPath,
		ExpectedValue: "normalizable phone number", ActualValue: value, Message: msg,
	}
}
