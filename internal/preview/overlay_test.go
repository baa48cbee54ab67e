package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/internal/domain"
)

func TestOverlayEmptyDocument(t *testing.T) {
	doc := domain.NewDocument()
	out, filled := Overlay(doc)

	assert.Equal(t, "Alex Morgan", out.PersonalDetails.FullName)
	assert.Empty(t, out.PersonalDetails.GitHub)
	assert.Len(t, out.Experience, 2)
	assert.True(t, out.Experience[0].End().IsOngoing())
	assert.Contains(t, filled, "summary")
	assert.Contains(t, filled, "projects")
	assert.NotContains(t, filled, "personalDetails.github")

	assert.Empty(t, doc.PersonalDetails.FullName, "input untouched")
	assert.Empty(t, doc.Experience)
}

func TestOverlayKeepsUserContent(t *testing.T) {
	doc := domain.NewDocument()
	doc.PersonalDetails.FullName = "Jane Doe"
	doc.Skills = []domain.SkillCategory{{ID: "s", Name: "Languages", Items: []string{"Go"}, Enabled: true}}

	out, filled := Overlay(doc)
	assert.Equal(t, "Jane Doe", out.PersonalDetails.FullName)
	assert.Equal(t, doc.Skills, out.Skills)
	assert.NotContains(t, filled, "personalDetails.fullName")
	assert.NotContains(t, filled, "skills")
	assert.Equal(t, "Senior Product Designer", out.PersonalDetails.JobTitle)
}
