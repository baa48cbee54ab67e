package export

import (
	"regexp"
	"strings"
)

// DefaultDisplayName stands in for a document without a display name.
const DefaultDisplayName = "My_Resume"

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives the download name from a display name: whitespace runs
// become underscores and "_Resume.pdf" is appended.
func FileName(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = DefaultDisplayName
	}
	return whitespace.ReplaceAllString(name, "_") + "_Resume.pdf"
}
