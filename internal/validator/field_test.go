package validator

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredCheck(t *testing.T) {
	assert.True(t, RequiredCheck("name", "Acme", "Required: Name").Passed)
	assert.False(t, RequiredCheck("name", "", "Required: Name").Passed)
	assert.False(t, RequiredCheck("name", "   ", "Required: Name").Passed)
}

func TestRegexCheck(t *testing.T) {
	re := regexp.MustCompile(`^\d+$`)

	t.Run("match passes", func(t *testing.T) {
		assert.True(t, RegexCheck("code", "123", "digits", "Format: Code", re).Passed)
	})
	t.Run("mismatch fails", func(t *testing.T) {
		res := RegexCheck("code", "12a", "digits", "Format: Code", re)
		assert.False(t, res.Passed)
		assert.Equal(t, "code", res.FieldPath)
	})
	t.Run("empty value skips", func(t *testing.T) {
		assert.True(t, RegexCheck("code", "", "digits", "Format: Code", re).Passed)
	})
}

func TestLengthCheck(t *testing.T) {
	assert.True(t, LengthCheck("name", "abc", 2, 5, "Length: Name").Passed)
	assert.False(t, LengthCheck("name", "a", 2, 5, "Length: Name").Passed)
	assert.False(t, LengthCheck("name", "abcdef", 2, 5, "Length: Name").Passed)
	// rune count, not byte count
	assert.True(t, LengthCheck("name", "عقار", 2, 5, "Length: Name").Passed)
	// empty skips; presence is the required rule's job
	assert.True(t, LengthCheck("name", "", 2, 5, "Length: Name").Passed)
}

func TestRangeCheck(t *testing.T) {
	v := func(f float64) *float64 { return &f }

	t.Run("within bounds", func(t *testing.T) {
		assert.True(t, RangeCheck("amount", v(50), 0, 100, true, "Range: Amount").Passed)
	})
	t.Run("below min", func(t *testing.T) {
		assert.False(t, RangeCheck("amount", v(-1), 0, 100, true, "Range: Amount").Passed)
	})
	t.Run("nil required fails", func(t *testing.T) {
		assert.False(t, RangeCheck("amount", nil, 0, 100, true, "Range: Amount").Passed)
	})
	t.Run("nil optional skips", func(t *testing.T) {
		assert.True(t, RangeCheck("amount", nil, 0, 100, false, "Range: Amount").Passed)
	})
	t.Run("bounds inclusive", func(t *testing.T) {
		assert.True(t, RangeCheck("amount", v(0), 0, 100, true, "Range: Amount").Passed)
		assert.True(t, RangeCheck("amount", v(100), 0, 100, true, "Range: Amount").Passed)
	})
}

func TestEnumCheck(t *testing.T) {
	type color string
	allowed := []color{"RED", "GREEN"}

	assert.True(t, EnumCheck("color", color("RED"), allowed, "Enum: Color").Passed)
	assert.False(t, EnumCheck("color", color("BLUE"), allowed, "Enum: Color").Passed)
	assert.True(t, EnumCheck("color", color(""), allowed, "Enum: Color").Passed)
}

func TestDateCheck(t *testing.T) {
	assert.True(t, DateCheck("due", "2026-01-15", "Format: Due").Passed)
	assert.False(t, DateCheck("due", "15-01-2026", "Format: Due").Passed)
	assert.True(t, DateCheck("due", "", "Format: Due").Passed)
}

func TestFlexNumberUnmarshal(t *testing.T) {
	type payload struct {
		Amount FlexNumber `json:"amount"`
	}

	tests := []struct {
		name string
		body string
		want *float64
	}{
		{"json number", `{"amount": 1500.5}`, ptr(1500.5)},
		{"numeric string", `{"amount": "1500.5"}`, ptr(1500.5)},
		{"string with spaces", `{"amount": " 42 "}`, ptr(42)},
		{"null", `{"amount": null}`, nil},
		{"absent", `{}`, nil},
		{"empty string", `{"amount": ""}`, nil},
		{"non-numeric string", `{"amount": "abc"}`, nil},
		{"bool coerces to nil not error", `{"amount": true}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			if tt.want == nil {
				assert.Nil(t, p.Amount.Float())
			} else {
				require.NotNil(t, p.Amount.Float())
				assert.Equal(t, *tt.want, *p.Amount.Float())
			}
		})
	}
}

func TestFlexNumberMarshal(t *testing.T) {
	b, err := json.Marshal(Num(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(b))

	b, err = json.Marshal(FlexNumber{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestFmtf(t *testing.T) {
	assert.Equal(t, "100", Fmtf(100))
	assert.Equal(t, "0.5", Fmtf(0.5))
}

func ptr(f float64) *float64 { return &f }
