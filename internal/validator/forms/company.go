package forms

import (
	"fmt"
	"strings"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// CompanyProfileForm is the settings-page company profile as submitted.
type CompanyProfileForm struct {
	LegalName string `json:"legal_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	TRN       string `json:"trn"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// CompanyProfileRequest is the normalized payload sent to the API: every
// field trimmed, email lowercased.
type CompanyProfileRequest struct {
	LegalName string `json:"legal_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	TRN       string `json:"trn"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// CompanyProfileSchema validates the company profile form. The phone rule is
// the strict +971 form; the email format check runs before the trim
// transform, so surrounding whitespace is rejected rather than repaired.
var CompanyProfileSchema = validator.Schema[CompanyProfileForm]{
	Entity: "company_profile",
	Fields: []validator.Rule[CompanyProfileForm]{
		{
			Key: "req.company.legal_name", Name: "Required: Legal Name", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("legal_name", f.LegalName, "Required: Legal Name"))
			},
		},
		{
			Key: "len.company.legal_name", Name: "Length: Legal Name", Kind: domain.RuleKindRange,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.LengthCheck("legal_name", f.LegalName, 2, 150, "Length: Legal Name"))
			},
		},
		{
			Key: "req.company.address", Name: "Required: Address", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("address", f.Address, "Required: Address"))
			},
		},
		{
			Key: "req.company.city", Name: "Required: City", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("city", f.City, "Required: City"))
			},
		},
		{
			Key: "req.company.country", Name: "Required: Country", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("country", f.Country, "Required: Country"))
			},
		},
		{
			Key: "req.company.trn", Name: "Required: TRN", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("trn", f.TRN, "Required: TRN"))
			},
		},
		{
			Key: "fmt.company.trn", Name: "Format: TRN", Kind: domain.RuleKindFormat,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(trnCheck("trn", f.TRN, "Format: TRN"))
			},
		},
		{
			Key: "req.company.phone", Name: "Required: Phone", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("phone", f.Phone, "Required: Phone"))
			},
		},
		{
			Key: "fmt.company.phone", Name: "Format: UAE Phone", Kind: domain.RuleKindFormat,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(uaePhoneCheck("phone", f.Phone, "Format: UAE Phone"))
			},
		},
		{
			Key: "req.company.email", Name: "Required: Email", Kind: domain.RuleKindRequired,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("email", f.Email, "Required: Email"))
			},
		},
		{
			Key: "fmt.company.email", Name: "Format: Email", Kind: domain.RuleKindFormat,
			Check: func(f *CompanyProfileForm) []validator.ValidationResult {
				return one(emailCheck("email", f.Email, "Format: Email"))
			},
		},
	},
}

// Validate runs the company profile schema.
func (f *CompanyProfileForm) Validate() *validator.Report {
	return CompanyProfileSchema.Validate(f)
}

// ToRequest applies the declared normalizations: trim every field, lowercase
// the email. Call only after Validate passes.
func (f *CompanyProfileForm) ToRequest() CompanyProfileRequest {
	return CompanyProfileRequest{
		LegalName: strings.TrimSpace(f.LegalName),
		Address:   strings.TrimSpace(f.Address),
		City:      strings.TrimSpace(f.City),
		Country:   strings.TrimSpace(f.Country),
		TRN:       strings.TrimSpace(f.TRN),
		Phone:     strings.TrimSpace(f.Phone),
		Email:     validator.NormalizeEmail(f.Email),
	}
}

// DefaultCompanyProfileForm returns the create-mode initial values: UAE
// country pre-selected, phone control pre-filled with the +971 stub.
func DefaultCompanyProfileForm() CompanyProfileForm {
	return CompanyProfileForm{
		Country: DefaultCountry,
		Phone:   PhoneStub,
	}
}

// CompanyProfileFormFromRecord maps an existing profile into form shape for
// edit mode, substituting safe defaults for missing upstream values.
func CompanyProfileFormFromRecord(p *domain.CompanyProfile) CompanyProfileForm {
	f := CompanyProfileForm{
		LegalName: p.LegalName,
		Address:   p.Address,
		City:      p.City,
		Country:   p.Country,
		TRN:       p.TRN,
		Phone:     p.Phone,
		Email:     p.Email,
	}
	if f.Country == "" {
		f.Country = DefaultCountry
	}
	if f.Phone == "" {
		f.Phone = PhoneStub
	}
	return f
}

func trnCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "100 + 12 digits", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := validator.ValidTRN(value)
	msg := fmt.Sprintf("%s: %s is a valid UAE TRN", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s must be 15 digits starting with 100", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "100 + 12 digits", ActualValue: value, Message: msg,
	}
}

func uaePhoneCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "+971XXXXXXXXX", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := validator.ValidUAEPhone(value)
	msg := fmt.Sprintf("%s: %s is a valid UAE phone number", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s must match +971 followed by 9 digits", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "+971XXXXXXXXX", ActualValue: value, Message: msg,
	}
}

func emailCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "email address", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	// No trimming before the match: an email with surrounding whitespace
	// fails here even though the normalizer would strip it later.
	passed := validator.ValidEmail(value)
	msg := fmt.Sprintf("%s: %s is a valid email address", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a valid email address", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "email address", ActualValue: value, Message: msg,
	}
}
