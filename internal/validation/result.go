// Package validation holds the pure field validators and section scorers
// used by the editor and the export-readiness check. Invalid input is an
// expected outcome, so every validator returns a result value instead of an
// error.
package validation

// Result is the outcome of validating one field.
type Result struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`

	Normalized   string `json:"normalized,omitempty"`
	Display      string `json:"display,omitempty"`
	ATSFormatted string `json:"atsFormatted,omitempty"`
	Suggested    string `json:"suggested,omitempty"`
}

func invalid(msg string) Result { return Result{Error: msg} }
