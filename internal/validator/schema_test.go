package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aqari/internal/domain"
)

type testForm struct {
	Name  string
	Email string
}

func testSchema() Schema[testForm] {
	return Schema[testForm]{
		Entity: "test",
		Fields: []Rule[testForm]{
			{
				Key: "req.test.name", Name: "Required: Name", Kind: domain.RuleKindRequired,
				Check: func(f *testForm) []ValidationResult {
					return []ValidationResult{RequiredCheck("name", f.Name, "Required: Name")}
				},
			},
			{
				Key: "len.test.name", Name: "Length: Name", Kind: domain.RuleKindRange,
				Check: func(f *testForm) []ValidationResult {
					return []ValidationResult{LengthCheck("name", f.Name, 3, 10, "Length: Name")}
				},
			},
			{
				Key: "fmt.test.email", Name: "Format: Email", Kind: domain.RuleKindFormat,
				Severity: domain.RuleSeverityWarning,
				Check: func(f *testForm) []ValidationResult {
					res := ValidationResult{Passed: ValidEmail(f.Email) || f.Email == "", FieldPath: "email"}
					if !res.Passed {
						res.Message = "Format: Email: invalid"
					}
					return []ValidationResult{res}
				},
			},
		},
		Cross: []Rule[testForm]{
			{
				Key: "xf.test.name_not_email", Name: "Cross-field: Name Differs From Email", Kind: domain.RuleKindCrossField,
				Check: func(f *testForm) []ValidationResult {
					passed := f.Name != f.Email
					msg := ""
					if !passed {
						msg = "Cross-field: Name Differs From Email: name must differ from email"
					}
					return []ValidationResult{{Passed: passed, FieldPath: "name", Message: msg}}
				},
			},
		},
	}
}

func TestSchemaValidateOrder(t *testing.T) {
	s := testSchema()
	rep := s.Validate(&testForm{Name: "ok", Email: "bad"})

	require.Len(t, rep.Entries, 4)
	assert.Equal(t, "req.test.name", rep.Entries[0].RuleKey)
	assert.Equal(t, "len.test.name", rep.Entries[1].RuleKey)
	assert.Equal(t, "fmt.test.email", rep.Entries[2].RuleKey)
	// cross-field pass always runs after the field pass
	assert.Equal(t, "xf.test.name_not_email", rep.Entries[3].RuleKey)
}

func TestSchemaSeverityDefaultsToError(t *testing.T) {
	s := testSchema()
	rep := s.Validate(&testForm{Name: "valid name", Email: "a@b.co"})
	assert.Equal(t, domain.RuleSeverityError, rep.Entries[0].Severity)
	assert.Equal(t, domain.RuleSeverityWarning, rep.Entries[2].Severity)
}

func TestReportValid(t *testing.T) {
	s := testSchema()

	t.Run("all pass", func(t *testing.T) {
		rep := s.Validate(&testForm{Name: "valid", Email: "a@b.co"})
		assert.True(t, rep.Valid())
		assert.NoError(t, rep.Err())
	})
	t.Run("warning failure does not block", func(t *testing.T) {
		rep := s.Validate(&testForm{Name: "valid", Email: "not-an-email"})
		assert.True(t, rep.Valid())
		assert.NoError(t, rep.Err())
		assert.Len(t, rep.Failures(), 1)
	})
	t.Run("error failure blocks", func(t *testing.T) {
		rep := s.Validate(&testForm{Name: "", Email: "a@b.co"})
		assert.False(t, rep.Valid())
	})
}

func TestReportErrorMapFirstWins(t *testing.T) {
	s := testSchema()
	// "ab" fails both the length rule and, combined with an equal email, the
	// cross rule on the same path. The map keeps only the first.
	rep := s.Validate(&testForm{Name: "ab", Email: "ab"})

	m := rep.ErrorMap()
	require.Contains(t, m, "name")
	assert.Contains(t, m["name"], "Length: Name")
	assert.True(t, rep.HasError("name"))
	assert.Equal(t, m["name"], rep.Message("name"))
}

func TestReportErrAsValidationError(t *testing.T) {
	s := testSchema()
	rep := s.Validate(&testForm{Name: ""})

	err := rep.Err()
	require.Error(t, err)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "name")
}

func TestReportCounts(t *testing.T) {
	s := testSchema()
	rep := s.Validate(&testForm{Name: "valid", Email: "not-an-email"})

	total, passed, errs, warnings := rep.Counts()
	assert.Equal(t, 4, total)
	assert.Equal(t, 3, passed)
	assert.Equal(t, 0, errs)
	assert.Equal(t, 1, warnings)
}
