package validation

import (
	"fmt"
	"regexp"
	"strings"

	"resume-builder/internal/domain"
)

// Section names accepted by CalculateSectionQuality.
const (
	SectionPersonalDetails = "personalDetails"
	SectionSummary         = "summary"
	SectionExperience      = "experience"
	SectionEducation       = "education"
	SectionSkills          = "skills"
)

// MaxSectionScore is the ceiling of every section score.
const MaxSectionScore = 100

// SectionScore is an advisory quality score with one feedback line per
// missed signal.
type SectionScore struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
	MaxScore int      `json:"maxScore"`
}

type scorer struct {
	score    int
	feedback []string
}

func (s *scorer) award(ok bool, points int, miss string) {
	if ok {
		s.score += points
		return
	}
	s.feedback = append(s.feedback, miss)
}

func (s *scorer) result() SectionScore {
	if s.feedback == nil {
		s.feedback = []string{}
	}
	return SectionScore{Score: s.score, Feedback: s.feedback, MaxScore: MaxSectionScore}
}

var (
	wordSplit      = regexp.MustCompile(`\s+`)
	digitPattern   = regexp.MustCompile(`\d+`)
	keywordPattern = regexp.MustCompile(`(?i)skill|expertise|proficient|experience`)
	metricPattern  = regexp.MustCompile(`(?i)\d+%|\d+\s(users|customers|clients)|\$\d+`)
)

// CalculateSectionQuality dispatches to the scorer for section. data must be
// the matching domain value; anything else scores zero with no feedback.
func CalculateSectionQuality(section string, data any) SectionScore {
	switch section {
	case SectionPersonalDetails:
		if v, ok := data.(domain.PersonalDetails); ok {
			return ScorePersonalDetails(v)
		}
	case SectionSummary:
		if v, ok := data.(domain.Summary); ok {
			return ScoreSummary(v)
		}
	case SectionExperience:
		if v, ok := data.(domain.ExperienceEntry); ok {
			return ScoreExperience(v)
		}
	case SectionEducation:
		if v, ok := data.(domain.EducationEntry); ok {
			return ScoreEducation(v)
		}
	case SectionSkills:
		if v, ok := data.([]domain.SkillCategory); ok {
			return ScoreSkills(v)
		}
	}
	return SectionScore{Feedback: []string{}}
}

// ScorePersonalDetails weighs name, title, contact validity and links.
func ScorePersonalDetails(pd domain.PersonalDetails) SectionScore {
	var s scorer
	s.award(pd.FullName != "", 20, "Add your full name")
	s.award(pd.JobTitle != "", 15, "Add your job title")

	email := ValidateEmail(pd.Email)
	s.award(email.Valid, 25, email.Error)
	phone := ValidatePhone(pd.Phone)
	s.award(phone.Valid, 20, phone.Error)

	s.award(pd.Location != "", 10, "Add your location")
	s.award(pd.LinkedIn != "" || pd.GitHub != "" || pd.Website != "", 10,
		"Consider adding LinkedIn or portfolio link")
	return s.result()
}

// ScoreSummary rewards a 30-80 word summary with metrics and skill keywords.
func ScoreSummary(sum domain.Summary) SectionScore {
	var s scorer
	if sum.Content == "" {
		s.award(false, 0, "Write a professional summary")
		return s.result()
	}
	s.score = 40

	words := 0
	for _, w := range wordSplit.Split(sum.Content, -1) {
		if w != "" {
			words++
		}
	}
	switch {
	case words >= 30 && words <= 80:
		s.score += 30
	case words < 30:
		s.score += 15
		s.feedback = append(s.feedback, fmt.Sprintf("Summary too short (%d words, aim for 30-80)", words))
	default:
		s.score += 15
		s.feedback = append(s.feedback, fmt.Sprintf("Summary too long (%d words, aim for 30-80)", words))
	}

	s.award(digitPattern.MatchString(sum.Content), 15, "Consider adding years of experience or key metrics")
	s.award(keywordPattern.MatchString(sum.Content), 15, "Mention your key skills or expertise")
	return s.result()
}

// ScoreExperience scores one job entry.
func ScoreExperience(e domain.ExperienceEntry) SectionScore {
	var s scorer
	s.award(e.Role != "", 15, "Add job title")
	s.award(e.Company != "", 15, "Add company name")
	s.award(e.StartDate != "" && e.End().IsSet(), 10, "Add complete dates")

	if e.Description == "" {
		s.award(false, 0, "Add job description with bullet points")
		return s.result()
	}
	s.score += 20

	bullets := Bullets(e.Description)
	switch n := len(bullets); {
	case n >= 2 && n <= 5:
		s.score += 20
	case n < 2:
		s.score += 10
		s.feedback = append(s.feedback, "Add at least 2-3 bullet points")
	default:
		s.score += 10
		s.feedback = append(s.feedback, "Too many bullets (max 5 for readability)")
	}

	metric := false
	for _, b := range bullets {
		if metricPattern.MatchString(b) {
			metric = true
			break
		}
	}
	s.award(metric, 20, "Add metrics or numbers to show impact")
	return s.result()
}

// ScoreEducation scores one education entry.
func ScoreEducation(e domain.EducationEntry) SectionScore {
	var s scorer
	s.award(e.Institution != "", 40, "Add institution name")
	s.award(e.Degree != "", 40, "Add degree/qualification")
	s.award(e.StartDate != "" && e.EndDate != "", 20, "Add dates")
	return s.result()
}

// ScoreSkills rewards at least 3 categories and 8 items overall.
func ScoreSkills(skills []domain.SkillCategory) SectionScore {
	var s scorer
	if len(skills) == 0 {
		s.award(false, 0, "Add your technical and professional skills")
		return s.result()
	}
	s.award(len(skills) >= 3, 50, "Add at least 3 skill categories")
	total := 0
	for _, c := range skills {
		total += len(c.Items)
	}
	s.award(total >= 8, 50, "Add more skills (aim for 8-12 total)")
	return s.result()
}

// Bullets splits a newline-delimited description into its non-blank lines.
func Bullets(description string) []string {
	var out []string
	for _, line := range strings.Split(description, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}
