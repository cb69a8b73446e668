package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RequiredCheck fails when the trimmed value is empty.
func RequiredCheck(fieldPath, value, ruleName string) ValidationResult {
	passed := strings.TrimSpace(value) != ""
	msg := fmt.Sprintf("%s: %s is present", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: "non-empty value", ActualValue: value, Message: msg,
	}
}

// RegexCheck validates a value against a pattern. Empty values pass: presence
// is the required rule's concern, not the format rule's.
func RegexCheck(fieldPath, value, expected, ruleName string, re *regexp.Regexp) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: expected, ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
		}
	}
	passed := re.MatchString(value)
	msg := fmt.Sprintf("%s: %s matches expected format", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s does not match expected format", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected, ActualValue: value, Message: msg,
	}
}

// LengthCheck validates string length bounds. Empty values pass unless min > 0
// is meant to be enforced by a separate required rule.
func LengthCheck(fieldPath, value string, min, max int, ruleName string) ValidationResult {
	expected := fmt.Sprintf("%d-%d characters", min, max)
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: expected, ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping length check", ruleName),
		}
	}
	n := len([]rune(value))
	passed := n >= min && n <= max
	msg := fmt.Sprintf("%s: %s length is within bounds", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s must be between %d and %d characters", ruleName, fieldPath, min, max)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected, ActualValue: value, Message: msg,
	}
}

// RangeCheck validates numeric bounds over an optional value. A nil value
// fails only when the field is required; a failed string→number coercion
// surfaces here as nil rather than as an unmarshal error.
func RangeCheck(fieldPath string, value *float64, min, max float64, required bool, ruleName string) ValidationResult {
	expected := fmt.Sprintf("%s <= value <= %s", Fmtf(min), Fmtf(max))
	if value == nil {
		if required {
			return ValidationResult{
				Passed: false, FieldPath: fieldPath,
				ExpectedValue: expected, ActualValue: "",
				Message: fmt.Sprintf("%s: %s requires a numeric value", ruleName, fieldPath),
			}
		}
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: expected, ActualValue: "",
			Message: fmt.Sprintf("%s: field is empty, skipping range check", ruleName),
		}
	}
	passed := *value >= min && *value <= max
	msg := fmt.Sprintf("%s: %s is within range", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s must be between %s and %s", ruleName, fieldPath, Fmtf(min), Fmtf(max))
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected, ActualValue: Fmtf(*value), Message: msg,
	}
}

// EnumCheck validates enum membership. Empty values pass.
func EnumCheck[E ~string](fieldPath string, value E, allowed []E, ruleName string) ValidationResult {
	strs := make([]string, len(allowed))
	for i, a := range allowed {
		strs[i] = string(a)
	}
	expected := "one of {" + strings.Join(strs, ", ") + "}"
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: expected, ActualValue: "",
			Message: fmt.Sprintf("%s: field is empty, skipping enum check", ruleName),
		}
	}
	passed := false
	for _, a := range allowed {
		if value == a {
			passed = true
			break
		}
	}
	msg := fmt.Sprintf("%s: %s is a recognized value", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s has unrecognized value %q", ruleName, fieldPath, string(value))
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: expected, ActualValue: string(value), Message: msg,
	}
}

// DateCheck validates that a value parses in the canonical date layout.
// Empty values pass.
func DateCheck(fieldPath, value, ruleName string) ValidationResult {
	if value == "" {
		return ValidationResult{
			Passed: true, FieldPath: fieldPath,
			ExpectedValue: DateLayout, ActualValue: value,
			Message: fmt.Sprintf("%s: field is empty, skipping date check", ruleName),
		}
	}
	_, err := ParseDate(value)
	passed := err == nil
	msg := fmt.Sprintf("%s: %s is a valid date", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is not a parseable date", ruleName, fieldPath)
	}
	return ValidationResult{
		Passed: passed, FieldPath: fieldPath,
		ExpectedValue: DateLayout, ActualValue: value, Message: msg,
	}
}

// Fmtf formats a float without trailing zeros.
func Fmtf(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FlexNumber accepts a JSON number or a numeric string. A value that cannot
// be coerced yields a nil Value rather than an unmarshal error; the range
// check decides whether nil is acceptable.
type FlexNumber struct {
	Value *float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	n.Value = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		n.Value = &f
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	n.Value = &f
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}

// Float returns the coerced value, or nil when coercion failed or the field
// was absent.
func (n FlexNumber) Float() *float64 {
	return n.Value
}

// Num builds a FlexNumber from a literal, for defaults and tests.
func Num(v float64) FlexNumber {
	return FlexNumber{Value: &v}
}
