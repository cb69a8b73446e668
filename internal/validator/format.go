package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// UAE Tax Registration Number: exactly 15 digits with the fixed "100" prefix.
	trnPattern = regexp.MustCompile(`^100\d{12}$`)
	// Strict UAE phone used on the company profile: +971 then 9 digits, no separators.
	uaePhonePattern = regexp.MustCompile(`^\+971\d{9}$`)
	// Generalized E.164 used for vendor contacts.
	e164Pattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	// UAE IBAN: "AE" + 21 digits.
	uaeIBANPattern = regexp.MustCompile(`^AE\d{21}$`)
	// SWIFT/BIC: 8 or 11 characters.
	swiftPattern = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}(?:[A-Z0-9]{3})?$`)
	// Single-@, dot-containing, no whitespace anywhere. The format check runs
	// before any trim transform, so emails with surrounding whitespace fail
	// outright. Deliberately preserved behavior; see the format tests.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	e164Separators = strings.NewReplacer(" ", "", "-", "")
)

// ValidTRN reports whether s is a UAE TRN (15 digits, "100" prefix).
func ValidTRN(s string) bool { return trnPattern.MatchString(s) }

// ValidUAEPhone reports whether s matches the strict +971XXXXXXXXX form.
func ValidUAEPhone(s string) bool { return uaePhonePattern.MatchString(s) }

// ValidE164 reports whether s is a canonical E.164 number.
func ValidE164(s string) bool { return e164Pattern.MatchString(s) }

// ValidUAEIBAN reports whether s is a syntactically valid UAE IBAN.
func ValidUAEIBAN(s string) bool { return uaeIBANPattern.MatchString(s) }

// ValidSWIFT reports whether s is an 8- or 11-character SWIFT/BIC code.
func ValidSWIFT(s string) bool { return swiftPattern.MatchString(s) }

// ValidEmail reports whether s is an acceptable email address. No trimming
// happens here: leading or trailing whitespace fails the check.
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// NormalizeEmail applies the post-validation transform: trim + lowercase.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FormatToE164 normalizes a raw phone input to canonical E.164, assuming the
// UAE country code when absent. Spaces and hyphens are stripped first.
// Accepted local shapes: "05XXXXXXXX", bare "971XXXXXXXXX", bare "5XXXXXXXX".
// The boolean is false when the result still fails the E.164 pattern.
func FormatToE164(raw string) (string, bool) {
	s := e164Separators.Replace(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "+"):
		// already international
	case strings.HasPrefix(s, "05") && len(s) == 10:
		s = "+971" + s[1:]
	case strings.HasPrefix(s, "971"):
		s = "+" + s
	case strings.HasPrefix(s, "5") && len(s) == 9:
		s = "+971" + s
	}
	return s, e164Pattern.MatchString(s)
}

// ValidUUID reports whether s parses as a UUID.
func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// DateLayout is the wire format for all form dates.
const DateLayout = "2006-01-02"

// ParseDate parses a form date in the canonical layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date: %s", s)
	}
	return t, nil
}

// Today returns the current UTC date truncated to midnight. "Today" is
// inclusive on both "≤ today" and "≥ today" rules.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
