package forms

import (
	"fmt"
	"strings"

	"aqari/internal/domain"
	"aqari/internal/validator"
)

// BankAccountForm is a payout account as submitted from settings.
type BankAccountForm struct {
	BankName      string `json:"bank_name"`
	AccountHolder string `json:"account_holder"`
	IBAN          string `json:"iban"`
	SWIFT         string `json:"swift"`
	Currency      string `json:"currency"`
	IsDefault     bool   `json:"is_default"`
}

// BankAccountSchema validates a bank account form.
var BankAccountSchema = validator.Schema[BankAccountForm]{
	Entity: "bank_account",
	Fields: []validator.Rule[BankAccountForm]{
		{
			Key: "req.bank.name", Name: "Required: Bank Name", Kind: domain.RuleKindRequired,
			Check: func(f *BankAccountForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("bank_name", f.BankName, "Required: Bank Name"))
			},
		},
		{
			Key: "req.bank.account_holder", Name: "Required: Account Holder", Kind: domain.RuleKindRequired,
			Check: func(f *BankAccountForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("account_holder", f.AccountHolder, "Required: Account Holder"))
			},
		},
		{
			Key: "req.bank.iban", Name: "Required: IBAN", Kind: domain.RuleKindRequired,
			Check: func(f *BankAccountForm) []validator.ValidationResult {
				return one(validator.RequiredCheck("iban", f.IBAN, "Required: IBAN"))
			},
		},
		{
			Key: "fmt.bank.iban", Name: "Format: UAE IBAN", Kind: domain.RuleKindFormat,
			Check: func(f *BankAccountForm) []validator.ValidationResult {
				return one(ibanCheck("iban", f.IBAN, "Format: UAE IBAN"))
			},
		},
		{
			Key: "fmt.bank.swift", Name: "Format: SWIFT/BIC", Kind: domain.RuleKindFormat,
			Severity: domain.RuleSeverityWarning,
			Check: func(f *BankAccountForm) []validator.ValidationResult {
				return one(swiftCheck("swift", f.SWIFT, "Format: SWIFT/BIC"))
			},
		},
		{
			Key: "fmt.bank.currency", Name: "Format: Currency", Kind: domain.RuleKindFormat,
			Check: func(f *BankAccountForm) []validator.ValidationResult {
				val := strings.ToUpper(strings.TrimSpace(f.Currency))
				if val == "" {
					return one(validator.ValidationResult{
						Passed: true, FieldPath: "currency",
						ExpectedValue: "ISO 4217 code", ActualValue: val,
						Message: "Format: Currency: field is empty, skipping",
					})
				}
				passed := knownCurrencies[val]
				msg := "Format: Currency: valid ISO 4217 code"
				if !passed {
					msg = "Format: Currency: not a recognized ISO 4217 code"
				}
				return one(validator.ValidationResult{
					Passed: passed, FieldPath: "currency",
					ExpectedValue: "ISO 4217 code", ActualValue: val, Message: msg,
				})
			},
		},
	},
}

// Validate runs the bank account schema.
func (f *BankAccountForm) Validate() *validator.Report {
	return BankAccountSchema.Validate(f)
}

// ToRecord maps the form onto a domain record, trimming and uppercasing
// bank identifiers.
func (f *BankAccountForm) ToRecord() domain.BankAccount {
	return domain.BankAccount{
		BankName:      strings.TrimSpace(f.BankName),
		AccountHolder: strings.TrimSpace(f.AccountHolder),
		IBAN:          strings.ToUpper(strings.TrimSpace(f.IBAN)),
		SWIFT:         strings.ToUpper(strings.TrimSpace(f.SWIFT)),
		Currency:      strings.ToUpper(strings.TrimSpace(f.Currency)),
		IsDefault:     f.IsDefault,
	}
}

// DefaultBankAccountForm returns create-mode initial values.
func DefaultBankAccountForm() BankAccountForm {
	return BankAccountForm{Currency: "AED"}
}

// BankAccountFormFromRecord maps an existing account into form shape.
func BankAccountFormFromRecord(a *domain.BankAccount) BankAccountForm {
	f := BankAccountForm{
		BankName:      a.BankName,
		AccountHolder: a.AccountHolder,
		IBAN:          a.IBAN,
		SWIFT:         a.SWIFT,
		Currency:      a.Currency,
		IsDefault:     a.IsDefault,
	}
	if f.Currency == "" {
		f.Currency = "AED"
	}
	return f
}

func ibanCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "AE + 21 digits", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := validator.ValidUAEIBAN(value)
	msg := fmt.Sprintf("%s: %s is a valid UAE IBAN", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s must be AE followed by 21 digits", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "AE + 21 digits", ActualValue: value, Message: msg,
	}
}

func swiftCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "8 or 11 character BIC", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := validator.ValidSWIFT(value)
	msg := fmt.Sprintf("%s: %s is a valid SWIFT/BIC", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s must be an 8 or 11 character BIC", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "8 or 11 character BIC", ActualValue: value, Message: msg,
	}
}
