package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	daysPerYear      = 365.25
	maxDurationYears = 50
	minDurationYears = 0.08
)

// DateRangeResult extends Result with the computed duration.
type DateRangeResult struct {
	Result
	// Duration is in fractional years, rounded to one decimal unless the
	// range is shorter than a month.
	Duration        float64 `json:"duration"`
	DurationDisplay string  `json:"durationDisplay,omitempty"`
}

var (
	monthYearPattern = regexp.MustCompile(`^(\d{2})/(\d{4})$`)
	yearPattern      = regexp.MustCompile(`^(\d{4})$`)
	monthNamePattern = regexp.MustCompile(`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s(\d{4})$`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate parses "MM/YYYY", "YYYY" or "Mon YYYY" into the first day of that
// month. The first matching format wins.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		// time.Date normalizes out of range months the same way a calendar
		// rollover would ("13/2020" is January 2021).
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := yearPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	if m := monthNamePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, monthIndex[strings.ToLower(m[1])], 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// DateRangeValidator validates date ranges against an injectable clock.
type DateRangeValidator struct {
	Now func() time.Time
}

// ValidateDateRange validates against the wall clock.
func ValidateDateRange(start, end string, isCurrent bool) DateRangeResult {
	return DateRangeValidator{Now: time.Now}.Validate(start, end, isCurrent)
}

// Validate checks that start and end parse, lie in the past, are ordered
// and span a plausible duration. isCurrent substitutes now for the end.
func (v DateRangeValidator) Validate(start, end string, isCurrent bool) DateRangeResult {
	now := time.Now()
	if v.Now != nil {
		now = v.Now()
	}
	now = now.UTC()

	from, ok := ParseDate(start)
	if !ok {
		return DateRangeResult{Result: invalid("Invalid start date format. Use MM/YYYY or YYYY")}
	}
	to := now
	if !isCurrent {
		if to, ok = ParseDate(end); !ok {
			return DateRangeResult{Result: invalid("Invalid end date format. Use MM/YYYY or YYYY")}
		}
	}
	if from.After(now) {
		return DateRangeResult{Result: invalid("Start date cannot be in the future")}
	}
	if !isCurrent && to.After(now) {
		return DateRangeResult{Result: invalid("End date cannot be in the future")}
	}
	if to.Before(from) {
		return DateRangeResult{Result: invalid("End date must be after start date")}
	}

	years := to.Sub(from).Hours() / 24 / daysPerYear
	if years > maxDurationYears {
		return DateRangeResult{Result: invalid("Duration exceeds 50 years. Please verify your dates.")}
	}
	if years < minDurationYears {
		return DateRangeResult{
			Result: Result{
				Valid:   true,
				Warning: "Duration less than 1 month. Consider combining short roles or describe as project work.",
			},
			Duration:        years,
			DurationDisplay: FormatDuration(years),
		}
	}
	return DateRangeResult{
		Result:          Result{Valid: true},
		Duration:        math.Round(years*10) / 10,
		DurationDisplay: FormatDuration(years),
	}
}

// FormatDuration renders fractional years as "N years, M months".
func FormatDuration(years float64) string {
	whole := int(math.Floor(years))
	months := int(math.Round((years - float64(whole)) * 12))
	if whole == 0 && months < 12 {
		return plural(months, "month")
	}
	if months == 12 {
		whole, months = whole+1, 0
	}
	if months == 0 {
		return plural(whole, "year")
	}
	return plural(whole, "year") + ", " + plural(months, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
