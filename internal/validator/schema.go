package validator

import (
	"aqari/internal/domain"
)

// Rule is a single named check over a form. Check returns one result per
// field path it examined; a rule may fan out to several paths.
type Rule[T any] struct {
	Key      string
	Name     string
	Kind     domain.RuleKind
	Severity domain.RuleSeverity
	Check    func(*T) []ValidationResult
}

// Schema describes the full rule set for one entity form: a per-field pass
// followed by a cross-field pass, both evaluated in declaration order.
// Validation is a pure function of the form value; no rule performs I/O.
type Schema[T any] struct {
	Entity string
	Fields []Rule[T]
	Cross  []Rule[T]
}

// Validate runs both passes and aggregates every result. It never stops at
// the first failure, so a caller can surface all problems at once.
func (s *Schema[T]) Validate(form *T) *Report {
	rep := &Report{Entity: s.Entity}
	s.run(rep, s.Fields, form)
	s.run(rep, s.Cross, form)
	return rep
}

func (s *Schema[T]) run(rep *Report, rules []Rule[T], form *T) {
	for i := range rules {
		rule := &rules[i]
		sev := rule.Severity
		if sev == "" {
			sev = domain.RuleSeverityError
		}
		for _, res := range rule.Check(form) {
			rep.Entries = append(rep.Entries, ReportEntry{
				RuleKey:          rule.Key,
				RuleName:         rule.Name,
				Kind:             rule.Kind,
				Severity:         sev,
				ValidationResult: res,
			})
		}
	}
}

// Rules returns all rules in evaluation order.
func (s *Schema[T]) Rules() []Rule[T] {
	out := make([]Rule[T], 0, len(s.Fields)+len(s.Cross))
	out = append(out, s.Fields...)
	out = append(out, s.Cross...)
	return out
}
