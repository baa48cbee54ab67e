package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		valid   bool
		wantErr string
	}{
		{"empty", "", false, "Email is required"},
		{"too long", strings.Repeat("a", 250) + "@x.com", false, "Email too long (max 254 characters)"},
		{"no at", "jane.example.com", false, "Invalid email format"},
		{"long local", strings.Repeat("a", 65) + "@example.com", false, "Email username too long (max 64 characters)"},
		{"double dot", "jane..doe@example.com", false, "Email cannot have consecutive dots"},
		{"leading dot", ".jane@example.com", false, "Email cannot start or end with a dot"},
		{"trailing dot", "jane.@example.com", false, "Email cannot start or end with a dot"},
		{"short domain", "jane@ab", false, "Invalid email domain"},
		{"no tld", "jane@localhost", false, "Email domain must have a TLD (e.g., .com)"},
		{"ok", "  Jane.Doe@Example.com ", true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateEmail(tt.in)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.wantErr, res.Error)
		})
	}
}

func TestValidateEmailNormalizedIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Jane.Doe@Example.COM", "x+tag@Sub.Domain.org", "john@gmial.com"} {
		res := ValidateEmail(in)
		assert.True(t, res.Valid, in)
		assert.Equal(t, strings.ToLower(res.Normalized), res.Normalized)

		again := ValidateEmail(res.Normalized)
		assert.True(t, again.Valid)
		assert.Equal(t, res.Normalized, again.Normalized)
	}
}

func TestValidateEmailTypoSuggestion(t *testing.T) {
	t.Parallel()

	in := "john@gmial.com"
	res := ValidateEmail(in)

	assert.True(t, res.Valid)
	assert.Equal(t, "john@gmail.com", res.Suggested)
	assert.Equal(t, "Did you mean john@gmail.com?", res.Warning)
	assert.Equal(t, "john@gmial.com", res.Normalized, "suggestion is not applied")
	assert.Equal(t, "john@gmial.com", in)
}
