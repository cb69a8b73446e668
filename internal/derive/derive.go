// Package derive holds small display computations the dashboards and
// detail views need: calendar spans, monthly-fee proration, trend and
// share percentages. Everything here is a pure function of its inputs.
package derive

import (
	"fmt"
	"math"
	"time"
)

// Span returns the whole calendar months between from and to, plus the
// leftover days. from after to yields (0, 0).
func Span(from, to time.Time) (months, days int) {
	from = dateOnly(from)
	to = dateOnly(to)
	if to.Before(from) {
		return 0, 0
	}

	months = (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	// AddDate normalizes overflow (Jan 31 + 1 month is Mar 3), so the
	// anchor can land past to more than once near month ends.
	for months > 0 && from.AddDate(0, months, 0).After(to) {
		months--
	}
	days = int(to.Sub(from.AddDate(0, months, 0)).Hours() / 24)
	return months, days
}

// FormatSpan renders a span as "11 months, 20 days", dropping zero parts.
// A zero span reads "0 days".
func FormatSpan(months, days int) string {
	switch {
	case months > 0 && days > 0:
		return fmt.Sprintf("%s, %s", plural(months, "month"), plural(days, "day"))
	case months > 0:
		return plural(months, "month")
	default:
		return plural(days, "day")
	}
}

// ProrateMonthlyFee returns the portion of a monthly fee covering the
// remainder of the month starting on from, inclusive of the start day.
// Rounded to fils (2 decimal places).
func ProrateMonthlyFee(fee float64, from time.Time) float64 {
	daysInMonth := time.Date(from.Year(), from.Month()+1, 0, 0, 0, 0, 0, from.Location()).Day()
	remaining := daysInMonth - from.Day() + 1
	return math.Round(fee*float64(remaining)/float64(daysInMonth)*100) / 100
}

// Share returns part as a percentage of total, rounded to one decimal
// place. A non-positive total yields 0.
func Share(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(part/total*1000) / 10
}

// FormatTrend renders the percentage change from previous to current with
// an explicit sign, e.g. "+12.5%". A zero previous value has no defined
// change and reads "n/a".
func FormatTrend(current, previous float64) string {
	if previous == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f%%", (current-previous)/previous*100)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
