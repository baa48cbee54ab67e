package validation

import (
	"regexp"
	"strings"
)

const (
	minPhoneLength = 10
	maxPhoneLength = 15
	nationalDigits = 10
)

var extensionPattern = regexp.MustCompile(`(?i)ext|x\d+`)

// ValidatePhone checks a phone number and produces its digit-only form plus
// an ATS-friendly display form. Extensions are rejected, not stripped.
func ValidatePhone(raw string) Result {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalid("Phone number is required")
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, trimmed)
	international := strings.HasPrefix(trimmed, "+")
	cleaned := digits
	if international {
		cleaned = "+" + digits
	}

	if len(cleaned) < minPhoneLength {
		return invalid("Phone number too short (minimum 10 digits)")
	}
	if len(cleaned) > maxPhoneLength {
		return invalid("Phone number too long (maximum 15 digits)")
	}
	if extensionPattern.MatchString(trimmed) {
		return invalid("Remove extension (use main number only for better ATS compatibility)")
	}

	display := formatPhone(cleaned, digits, international)
	return Result{Valid: true, Normalized: digits, Display: display, ATSFormatted: display}
}

func formatPhone(cleaned, digits string, international bool) string {
	switch {
	case international && len(digits) >= nationalDigits:
		cc := cleaned[:len(cleaned)-nationalDigits]
		return cc + " " + group334(cleaned[len(cleaned)-nationalDigits:])
	case international:
		return cleaned
	case len(digits) == nationalDigits:
		return group334(digits)
	case len(digits) == nationalDigits+1:
		return "+1 " + group334(digits[1:])
	default:
		return cleaned
	}
}

func group334(n string) string {
	return n[:3] + " " + n[3:6] + " " + n[6:]
}
