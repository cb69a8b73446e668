package validator

import (
	"aqari/internal/domain"
)

// ValidationResult is the outcome of one rule check against one field path.
type ValidationResult struct {
	Passed        bool   `json:"passed"`
	FieldPath     string `json:"field_path"`
	ExpectedValue string `json:"expected_value"`
	ActualValue   string `json:"actual_value"`
	Message       string `json:"message"`
}

// ReportEntry pairs a ValidationResult with the metadata of the rule that
// produced it.
type ReportEntry struct {
	RuleKey  string              `json:"rule_key"`
	RuleName string              `json:"rule_name"`
	Kind     domain.RuleKind     `json:"kind"`
	Severity domain.RuleSeverity `json:"severity"`
	ValidationResult
}

// Report collects every rule result of a schema run, in declaration order.
// A report is built by Schema.Validate and is never mutated afterwards.
type Report struct {
	Entity  string        `json:"entity"`
	Entries []ReportEntry `json:"entries"`
}

// Valid reports whether no error-severity rule failed. Warning failures do
// not block submission.
func (r *Report) Valid() bool {
	for _, e := range r.Entries {
		if !e.Passed && e.Severity == domain.RuleSeverityError {
			return false
		}
	}
	return true
}

// Failures returns the failed entries in declaration order.
func (r *Report) Failures() []ReportEntry {
	var out []ReportEntry
	for _, e := range r.Entries {
		if !e.Passed {
			out = append(out, e)
		}
	}
	return out
}

// ErrorMap flattens error-severity failures into a field-path → message map.
// Multiple failures on the same path keep only the first encountered, in
// declaration order.
func (r *Report) ErrorMap() map[string]string {
	out := make(map[string]string)
	for _, e := range r.Entries {
		if e.Passed || e.Severity != domain.RuleSeverityError {
			continue
		}
		if _, seen := out[e.FieldPath]; seen {
			continue
		}
		out[e.FieldPath] = e.Message
	}
	return out
}

// HasError reports whether the given field path has an error-severity failure.
func (r *Report) HasError(fieldPath string) bool {
	for _, e := range r.Entries {
		if !e.Passed && e.Severity == domain.RuleSeverityError && e.FieldPath == fieldPath {
			return true
		}
	}
	return false
}

// Message returns the first error message recorded for a field path, or ""
// if the field has no error.
func (r *Report) Message(fieldPath string) string {
	for _, e := range r.Entries {
		if !e.Passed && e.Severity == domain.RuleSeverityError && e.FieldPath == fieldPath {
			return e.Message
		}
	}
	return ""
}

// Err returns nil when the report is valid, otherwise a *domain.ValidationError
// carrying the flattened error map.
func (r *Report) Err() error {
	if r.Valid() {
		return nil
	}
	return domain.NewValidationError(r.ErrorMap())
}

// Counts returns total, passed, error, and warning counts.
func (r *Report) Counts() (total, passed, errs, warnings int) {
	total = len(r.Entries)
	for _, e := range r.Entries {
		switch {
		case e.Passed:
			passed++
		case e.Severity == domain.RuleSeverityError:
			errs++
		default:
			warnings++
		}
	}
	return total, passed, errs, warnings
}
