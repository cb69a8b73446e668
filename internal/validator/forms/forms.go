// Package forms defines the typed form structs, validation schemas, create-mode
// defaults, and edit-mode record mappings for every entity the web client
// submits. Each schema is evaluated in two passes (per-field, then
// cross-field) and reports all failures at once as field-path-addressed
// messages.
package forms

import (
	"fmt"

	"aqari/internal/validator"
)

// DefaultCountry substitutes for a missing country on edit-mode mappings.
const DefaultCountry = "United Arab Emirates"

// PhoneStub pre-fills the phone control with the UAE prefix in create mode.
const PhoneStub = "+971"

// Known ISO 4217 currency codes accepted on bank accounts.
var knownCurrencies = map[string]bool{
	"AED": true, "USD": true, "EUR": true, "GBP": true, "SAR": true,
	"QAR": true, "KWD": true, "BHD": true, "OMR": true, "INR": true,
	"JPY": true, "CHF": true, "CNY": true, "SGD": true, "HKD": true,
}

// uuidCheck validates a UUID string field. Empty values pass; presence is a
// separate required rule.
func uuidCheck(fieldPath, value, ruleName string) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: "UUID", ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping UUID check", ruleName),
		}
	}
	passed := validator.ValidUUID(value)
	msg := fmt.Sprintf("%s: %s is a valid UUID", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a valid UUID", ruleName, fieldPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "UUID", ActualValue: value, Message: msg,
	}
}

// dateNotAfterToday fails when the date parses and lies after today.
// Unparseable or empty dates pass; the format pass owns those failures.
func dateNotAfterToday(fieldPath, value, ruleName string) validator.ValidationResult {
	return dateBoundCheck(fieldPath, value, ruleName, false)
}

// dateNotBeforeToday fails when the date parses and lies before today.
func dateNotBeforeToday(fieldPath, value, ruleName string) validator.ValidationResult {
	return dateBoundCheck(fieldPath, value, ruleName, true)
}

func dateBoundCheck(fieldPath, value, ruleName string, future bool) validator.ValidationResult {
	if value == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			Message: fmt.Sprintf("%s: field is empty, skipping", ruleName),
		}
	}
	d, err := validator.ParseDate(value)
	if err != nil {
		return validator.ValidationResult{
			Passed: true, FieldPath: fieldPath,
			Message: fmt.Sprintf("%s: date not parseable, skipping", ruleName),
		}
	}
	today := validator.Today()
	var passed bool
	var expected string
	if future {
		passed = !d.Before(today)
		expected = fmt.Sprintf(">= %s", today.Format(validator.DateLayout))
	} else {
		passed = !d.After(today)
		expected = fmt.Sprintf("<= %s", today.Format(validator.DateLayout))
	}
	msg := fmt.Sprintf("%s: %s is within the allowed window", ruleName, fieldPath)
	if !passed {
		if future {
			msg = fmt.Sprintf("%s: %s must not be in the past", ruleName, fieldPath)
		} else {
			msg = fmt.Sprintf("%s: %s must not be in the future", ruleName, fieldPath)
		}
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected, ActualValue: value, Message: msg,
	}
}

// dateOrder fails when both dates parse and first > second. Missing or
// unparseable dates pass; presence and format rules own those failures.
func dateOrder(firstPath, first, secondPath, second, ruleName string) validator.ValidationResult {
	if first == "" || second == "" {
		return validator.ValidationResult{
			Passed: true, FieldPath: secondPath,
			Message: fmt.Sprintf("%s: dates missing, skipping", ruleName),
		}
	}
	a, err1 := validator.ParseDate(first)
	b, err2 := validator.ParseDate(second)
	if err1 != nil || err2 != nil {
		return validator.ValidationResult{
			Passed: true, FieldPath: secondPath,
			Message: fmt.Sprintf("%s: dates not parseable, skipping", ruleName),
		}
	}
	passed := !b.Before(a)
	msg := fmt.Sprintf("%s: %s is on or after %s", ruleName, secondPath, firstPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is before %s", ruleName, secondPath, firstPath)
	}
	return validator.ValidationResult{
		Passed: passed, FieldPath: secondPath,
		ExpectedValue: fmt.Sprintf(">= %s", first),
		ActualValue:   second, Message: msg,
	}
}

func one(r validator.ValidationResult) []validator.ValidationResult {
	return []validator.ValidationResult{r}
}
