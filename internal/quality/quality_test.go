package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/internal/domain"
)

func minimalDoc() domain.ResumeDocument {
	doc := domain.NewDocument()
	doc.PersonalDetails = domain.PersonalDetails{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 415 555 0101",
		Location: "Remote",
	}
	doc.Experience = []domain.ExperienceEntry{
		{ID: "e1", Role: "Engineer", Company: "Acme", StartDate: "2019", EndDate: "2021", Enabled: true},
	}
	return doc
}

func fields(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Field)
	}
	return out
}

func TestEvaluateEmptyDocument(t *testing.T) {
	t.Parallel()

	r := Evaluate(domain.NewDocument())
	assert.False(t, r.CanExport)
	assert.Equal(t, []string{"Full Name", "Email", "Phone", "Location", "Content"}, fields(r.Issues))
	assert.Equal(t, "Email is required", r.Issues[1].Message)
	assert.Equal(t, 0, r.Score)
	assert.Equal(t, Blocked, Decide(r, true))
}

func TestEvaluateMinimalDocument(t *testing.T) {
	t.Parallel()

	r := Evaluate(minimalDoc())
	assert.True(t, r.CanExport)
	assert.Empty(t, r.Issues)
	// A single experience entry is itself a warning.
	assert.Equal(t, []string{"Summary", "Experience", "Skills"}, fields(r.Warnings))
	assert.Equal(t, 60, r.Score)
	assert.Equal(t, NeedsConfirmation, Decide(r, false))
	assert.Equal(t, Proceed, Decide(r, true))
}

func TestEvaluateTwoExperienceEntries(t *testing.T) {
	t.Parallel()

	doc := minimalDoc()
	doc.Experience = append(doc.Experience, domain.ExperienceEntry{ID: "e2", Role: "Intern", Company: "Beta"})
	r := Evaluate(doc)
	assert.Equal(t, []string{"Summary", "Skills"}, fields(r.Warnings))
	assert.Equal(t, 70, r.Score)
}

func TestEvaluateFresher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		projects  bool
		education bool
		score     int
		warnings  []string
	}{
		{"projects and education", true, true, 35 + 25 + 10 + 10, []string{"Summary", "Skills"}},
		{"projects only", true, false, 35 + 15 + 10, []string{"Summary", "Education", "Skills"}},
		{"education only", false, true, 35 + 10 + 10, []string{"Summary", "Projects", "Skills"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := minimalDoc()
			doc.Experience = nil
			if tt.projects {
				doc.Projects = []domain.ProjectEntry{{ID: "p1", Title: "Compiler"}}
			}
			if tt.education {
				doc.Education = []domain.EducationEntry{{ID: "d1", Institution: "MIT"}}
			}
			r := Evaluate(doc)
			assert.True(t, r.CanExport)
			assert.Equal(t, tt.score, r.Score)
			assert.Equal(t, tt.warnings, fields(r.Warnings))
		})
	}
}

func TestEvaluateCompleteDocument(t *testing.T) {
	t.Parallel()

	doc := minimalDoc()
	doc.Experience = append(doc.Experience, domain.ExperienceEntry{ID: "e2"})
	doc.Summary.Content = "Engineer"
	doc.Skills = []domain.SkillCategory{{ID: "s1", Name: "Languages", Items: []string{"Go"}}}

	r := Evaluate(doc)
	assert.Empty(t, r.Warnings)
	assert.Equal(t, 90, r.Score)
	assert.Equal(t, Proceed, Decide(r, false))
}

func TestCompletion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Completion(domain.NewDocument()))

	doc := domain.NewDocument()
	doc.PersonalDetails = domain.PersonalDetails{
		FullName: "Jane Doe", JobTitle: "Engineer", Email: "jane@example.com",
		Phone: "4155550101", Location: "Remote", Website: "jane.dev",
	}
	doc.Education = []domain.EducationEntry{
		{Institution: "MIT", Degree: "BSc", StartDate: "2010", EndDate: "2014"},
		{Institution: "MIT"},
	}
	// personal 100, education (100+40)/2 = 70
	assert.Equal(t, (100+70)/5, Completion(doc))
}
