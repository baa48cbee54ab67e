// Package quality decides whether a resume is ready to export.
package quality

import (
	"resume-builder/internal/domain"
	"resume-builder/internal/validation"
)

// Issue is one blocking issue or warning, keyed by the user-facing field
// name.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report partitions the document's defects into blocking issues and
// warnings and carries the cross-section readiness score.
type Report struct {
	Issues    []Issue `json:"issues"`
	Warnings  []Issue `json:"warnings"`
	Score     int     `json:"score"`
	CanExport bool    `json:"canExport"`
}

// Evaluate computes the export-readiness report of doc.
func Evaluate(doc domain.ResumeDocument) Report {
	r := Report{Issues: []Issue{}, Warnings: []Issue{}}
	pd := doc.PersonalDetails

	if pd.FullName == "" {
		r.block("Full Name", "Required for resume")
	} else {
		r.Score += 10
	}
	if email := validation.ValidateEmail(pd.Email); !email.Valid {
		r.block("Email", email.Error)
	} else {
		r.Score += 10
	}
	if phone := validation.ValidatePhone(pd.Phone); !phone.Valid {
		r.block("Phone", phone.Error)
	} else {
		r.Score += 10
	}
	if pd.Location == "" {
		r.block("Location", "Required for ATS systems")
	} else {
		r.Score += 5
	}

	hasExperience := len(doc.Experience) > 0
	hasProjects := len(doc.Projects) > 0
	hasEducation := len(doc.Education) > 0
	switch {
	case hasExperience:
		r.Score += 25
	case hasProjects && hasEducation:
		r.Score += 25
	case hasProjects:
		r.Score += 15
	case hasEducation:
		r.Score += 10
	default:
		r.block("Content", "Add at least one of: Work Experience, Projects, or Education")
	}

	if doc.Summary.Content == "" {
		r.warn("Summary", "Professional summary strongly recommended for ATS")
	} else {
		r.Score += 15
	}

	if !hasExperience {
		if hasProjects {
			r.Score += 10
		} else {
			r.warn("Projects", "Add academic/personal projects to showcase your skills")
		}
		if hasEducation {
			r.Score += 10
		} else {
			r.warn("Education", "Add your education details (required for freshers)")
		}
	} else if len(doc.Experience) < 2 {
		r.warn("Experience", "Consider adding more work experience for a stronger resume")
	} else {
		r.Score += 10
	}

	if len(doc.Skills) == 0 {
		r.warn("Skills", "Add your skills for better ATS keyword matching")
	} else {
		r.Score += 5
	}

	r.CanExport = len(r.Issues) == 0
	return r
}

func (r *Report) block(field, msg string) { r.Issues = append(r.Issues, Issue{field, msg}) }
func (r *Report) warn(field, msg string)  { r.Warnings = append(r.Warnings, Issue{field, msg}) }

// Decision is the outcome of the two-tier export gate.
type Decision int

const (
	// Blocked means blocking issues exist and export is refused.
	Blocked Decision = iota
	// NeedsConfirmation means only warnings exist and the user has not
	// confirmed them yet.
	NeedsConfirmation
	// Proceed means export may run.
	Proceed
)

func (d Decision) String() string {
	switch d {
	case Blocked:
		return "blocked"
	case NeedsConfirmation:
		return "needs_confirmation"
	default:
		return "proceed"
	}
}

// Decide applies the export gate to r. confirmed reports whether the user
// acknowledged every warning.
func Decide(r Report, confirmed bool) Decision {
	switch {
	case len(r.Issues) > 0:
		return Blocked
	case len(r.Warnings) > 0 && !confirmed:
		return NeedsConfirmation
	default:
		return Proceed
	}
}

// Completion is the mean of the five section scores. Experience and
// education are averaged over their entries and count as zero when empty.
func Completion(doc domain.ResumeDocument) int {
	total := validation.ScorePersonalDetails(doc.PersonalDetails).Score +
		validation.ScoreSummary(doc.Summary).Score +
		validation.ScoreSkills(doc.Skills).Score

	if n := len(doc.Experience); n > 0 {
		sum := 0
		for _, e := range doc.Experience {
			sum += validation.ScoreExperience(e).Score
		}
		total += sum / n
	}
	if n := len(doc.Education); n > 0 {
		sum := 0
		for _, e := range doc.Education {
			sum += validation.ScoreEducation(e).Score
		}
		total += sum / n
	}
	return total / 5
}
