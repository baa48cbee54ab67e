package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() DateRangeValidator {
	return DateRangeValidator{Now: func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"03/2020", time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC), true},
		{"2019", time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"sep 2018", time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC), true},
		{"Sep 2018", time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC), true},
		{"September 2018", time.Time{}, false},
		{"3/2020", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	t.Parallel()

	v := fixedClock()
	tests := []struct {
		name      string
		start     string
		end       string
		current   bool
		wantErr   string
		display   string
		duration  float64
		wantAlert bool
	}{
		{name: "bad start", start: "soon", end: "2020", wantErr: "Invalid start date format. Use MM/YYYY or YYYY"},
		{name: "bad end", start: "2019", end: "later", wantErr: "Invalid end date format. Use MM/YYYY or YYYY"},
		{name: "current ignores end", start: "06/2023", end: "garbage", current: true, display: "2 years", duration: 2},
		{name: "future start", start: "2030", current: true, wantErr: "Start date cannot be in the future"},
		{name: "future end", start: "2020", end: "12/2026", wantErr: "End date cannot be in the future"},
		{name: "reversed", start: "2021", end: "2020", wantErr: "End date must be after start date"},
		{name: "too long", start: "1960", end: "2020", wantErr: "Duration exceeds 50 years. Please verify your dates."},
		{name: "short", start: "03/2020", end: "Mar 2020", wantAlert: true, display: "0 months"},
		{name: "years and months", start: "Jan 2018", end: "04/2020", display: "2 years, 3 months", duration: 2.2},
		{name: "months only", start: "01/2020", end: "04/2020", display: "3 months", duration: 0.2},
		{name: "one year", start: "2019", end: "2020", display: "1 year", duration: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.start, tt.end, tt.current)
			assert.Equal(t, tt.wantErr, res.Error)
			assert.Equal(t, tt.wantErr == "", res.Valid)
			if tt.wantErr != "" {
				return
			}
			assert.Equal(t, tt.display, res.DurationDisplay)
			assert.Equal(t, tt.wantAlert, res.Warning != "")
			if !tt.wantAlert {
				assert.InDelta(t, tt.duration, res.Duration, 0.05)
			}
		})
	}
}

func TestValidateDateRangeRejectsReversedAcrossFormats(t *testing.T) {
	t.Parallel()

	v := fixedClock()
	pairs := [][2]string{
		{"05/2021", "2020"},
		{"2021", "Dec 2020"},
		{"Mar 2021", "02/2021"},
		{"06/2022", "05/2022"},
		{"2022", "2021"},
		{"Feb 2022", "Jan 2022"},
	}
	for _, p := range pairs {
		res := v.Validate(p[0], p[1], false)
		assert.False(t, res.Valid, "%s -> %s", p[0], p[1])
		assert.Equal(t, "End date must be after start date", res.Error)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 month", FormatDuration(1.0/12))
	assert.Equal(t, "6 months", FormatDuration(0.5))
	assert.Equal(t, "1 year, 1 month", FormatDuration(1+1.0/12))
	assert.Equal(t, "3 years", FormatDuration(2.99))
}
