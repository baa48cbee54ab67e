package validation

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength = 254
	maxLocalLength = 64
)

var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// domainTypos maps common misspelled mail domains to the intended one.
var domainTypos = map[string]string{
	"gmial.com":   "gmail.com",
	"gmai.com":    "gmail.com",
	"yahooo.com":  "yahoo.com",
	"outlok.com":  "outlook.com",
	"hotmial.com": "hotmail.com",
}

// ValidateEmail checks structure and length of an address. A known domain
// typo still validates but carries a warning and a suggested address; the
// suggestion is never applied here.
func ValidateEmail(raw string) Result {
	if raw == "" {
		return invalid("Email is required")
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return invalid("Email is required")
	}
	if len(trimmed) > maxEmailLength {
		return invalid("Email too long (max 254 characters)")
	}
	if !emailPattern.MatchString(trimmed) {
		return invalid("Invalid email format")
	}

	local, domain, _ := strings.Cut(trimmed, "@")
	if len(local) > maxLocalLength {
		return invalid("Email username too long (max 64 characters)")
	}
	if strings.Contains(local, "..") {
		return invalid("Email cannot have consecutive dots")
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return invalid("Email cannot start or end with a dot")
	}
	if len(domain) < 3 {
		return invalid("Invalid email domain")
	}
	if !strings.Contains(domain, ".") {
		return invalid("Email domain must have a TLD (e.g., .com)")
	}

	normalized := strings.ToLower(trimmed)
	if fix, ok := domainTypos[strings.ToLower(domain)]; ok {
		suggested := local + "@" + fix
		return Result{
			Valid:      true,
			Warning:    "Did you mean " + suggested + "?",
			Normalized: normalized,
			Suggested:  suggested,
		}
	}
	return Result{Valid: true, Normalized: normalized, ATSFormatted: normalized}
}
