package domain

// PresentLabel is how an ongoing end date is displayed.
const PresentLabel = "Present"

// EndDate is either a fixed date text or ongoing.
type EndDate struct {
	ongoing bool
	text    string
}

// Fixed returns an end date holding the given free-form date text.
func Fixed(text string) EndDate { return EndDate{text: text} }

// Ongoing returns an end date meaning "still current".
func Ongoing() EndDate { return EndDate{ongoing: true} }

func (e EndDate) IsOngoing() bool { return e.ongoing }

// Text returns the fixed date text, or "" when ongoing.
func (e EndDate) Text() string {
	if e.ongoing {
		return ""
	}
	return e.text
}

// Display returns the text shown on a rendered resume.
func (e EndDate) Display() string {
	if e.ongoing {
		return PresentLabel
	}
	return e.text
}

// IsSet reports whether the end is known, either ongoing or a non-empty date.
func (e EndDate) IsSet() bool {
	return e.ongoing || e.text != ""
}
