package validation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		wantErr    string
		normalized string
		display    string
	}{
		{"empty", "", "Phone number is required", "", ""},
		{"short", "555-0101", "Phone number too short (minimum 10 digits)", "", ""},
		{"long", "+1234567890123456", "Phone number too long (maximum 15 digits)", "", ""},
		{"extension word", "415 555 0101 ext 22", "Remove extension (use main number only for better ATS compatibility)", "", ""},
		{"extension x", "(415) 555-0101 x22", "Remove extension (use main number only for better ATS compatibility)", "", ""},
		{"international", "+1 415 555 0101", "", "14155550101", "+1 415 555 0101"},
		{"international long cc", "+44 (20) 7946-0958", "", "442079460958", "+44 207 946 0958"},
		{"domestic ten", "(415) 555-0101", "", "4155550101", "415 555 0101"},
		{"domestic trunk", "1-415-555-0101", "", "14155550101", "+1 415 555 0101"},
		{"other length", "041555501012", "", "041555501012", "041555501012"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidatePhone(tt.in)
			assert.Equal(t, tt.wantErr, res.Error)
			assert.Equal(t, tt.wantErr == "", res.Valid)
			assert.Equal(t, tt.normalized, res.Normalized)
			assert.Equal(t, tt.display, res.Display)
			assert.Equal(t, tt.display, res.ATSFormatted)
		})
	}
}

func TestValidatePhoneRoundTrip(t *testing.T) {
	t.Parallel()

	digits := regexp.MustCompile(`^\d+$`)
	for _, in := range []string{"+1 415 555 0101", "(415) 555-0101", "14155550101", "+44 20 7946 0958", "041555501012"} {
		first := ValidatePhone(in)
		assert.True(t, first.Valid, in)
		assert.Regexp(t, digits, first.Normalized)

		second := ValidatePhone(first.Display)
		assert.True(t, second.Valid, first.Display)
		assert.Equal(t, first.Normalized, second.Normalized)
	}
}
