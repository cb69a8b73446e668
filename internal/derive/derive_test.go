package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name       string
		from, to   time.Time
		months     int
		days       int
	}{
		{"full year", date(2026, 1, 1), date(2027, 1, 1), 12, 0},
		{"eleven months twenty days", date(2026, 1, 10), date(2026, 12, 30), 11, 20},
		{"same day", date(2026, 3, 15), date(2026, 3, 15), 0, 0},
		{"days only", date(2026, 3, 15), date(2026, 3, 28), 0, 13},
		{"month-end start over short february", date(2026, 1, 31), date(2026, 3, 1), 0, 29},
		{"reversed dates", date(2026, 6, 1), date(2026, 5, 1), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, days := Span(tt.from, tt.to)
			assert.Equal(t, tt.months, months)
			assert.Equal(t, tt.days, days)
		})
	}
}

func TestFormatSpan(t *testing.T) {
	assert.Equal(t, "11 months, 20 days", FormatSpan(11, 20))
	assert.Equal(t, "1 month, 1 day", FormatSpan(1, 1))
	assert.Equal(t, "12 months", FormatSpan(12, 0))
	assert.Equal(t, "13 days", FormatSpan(0, 13))
	assert.Equal(t, "0 days", FormatSpan(0, 0))
}

func TestProrateMonthlyFee(t *testing.T) {
	// Mid-month start: 16 of 30 days remain.
	assert.InDelta(t, 400.0, ProrateMonthlyFee(750, date(2026, 9, 15)), 0.001)
	// First of month: full fee.
	assert.InDelta(t, 750.0, ProrateMonthlyFee(750, date(2026, 9, 1)), 0.001)
	// Last day of month: one day's worth.
	assert.InDelta(t, 25.0, ProrateMonthlyFee(750, date(2026, 9, 30)), 0.001)
	// Leap February.
	assert.InDelta(t, 500.0, ProrateMonthlyFee(1450, date(2028, 2, 20)), 0.001)
}

func TestShare(t *testing.T) {
	assert.InDelta(t, 83.3, Share(60000, 72000), 0.001)
	assert.InDelta(t, 100.0, Share(500, 500), 0.001)
	assert.Zero(t, Share(500, 0))
}

func TestFormatTrend(t *testing.T) {
	assert.Equal(t, "+12.5%", FormatTrend(90, 80))
	assert.Equal(t, "-25.0%", FormatTrend(60, 80))
	assert.Equal(t, "+0.0%", FormatTrend(80, 80))
	assert.Equal(t, "n/a", FormatTrend(80, 0))
}
