package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
	"resume-builder/internal/export"
	"resume-builder/internal/quality"
)

func TestCreateDefaults(t *testing.T) {
	s, _ := newResumes(t)

	r := create(t, s, "u1", "")
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, domain.DefaultTitle, r.Title)
	assert.Equal(t, domain.DefaultAccentColor, r.Design.AccentColor)
	assert.Zero(t, r.ATSScore)
}

func TestCreateScoresAndAssignsIDs(t *testing.T) {
	s, _ := newResumes(t)

	r := create(t, s, "u1", minimalJSON)
	assert.Equal(t, "Backend", r.Title)
	require.Len(t, r.Experience, 1)
	assert.NotEmpty(t, r.Experience[0].ID)
	assert.Equal(t, quality.Evaluate(r.ResumeDocument).Score, r.ATSScore)
	assert.Equal(t, 60, r.ATSScore)
	assert.Equal(t, quality.Completion(r.ResumeDocument), r.CompletionPercentage)
}

func TestCreateRejects(t *testing.T) {
	s, _ := newResumes(t)
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "schema violation", raw: `{"design": {"layout": "wide"}}`},
		{name: "unknown entry field", raw: `{"experience": [{"title": "x"}]}`},
		{name: "over limit", raw: `{"personalDetails": {"fullName": "` + long(51) + `"}}`},
		{name: "not an object", raw: `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, "u1", json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestOwnerScoping(t *testing.T) {
	s, _ := newResumes(t)
	ctx := context.Background()
	r := create(t, s, "u1", minimalJSON)

	_, err := s.Get(ctx, "u2", r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Update(ctx, "u2", r.ID, json.RawMessage(`{"title": "x"}`))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "u2", r.ID), domain.ErrNotFound)

	list, err := s.List(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.Delete(ctx, "u1", r.ID))
	_, err = s.Get(ctx, "u1", r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateReplacesTopLevelFields(t *testing.T) {
	s, _ := newResumes(t)
	ctx := context.Background()
	r := create(t, s, "u1", minimalJSON)

	got, err := s.Update(ctx, "u1", r.ID, json.RawMessage(`{"personalDetails": {"fullName": "John Roe"}, "id": "ignored"}`))
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "Backend", got.Title)
	assert.Equal(t, "John Roe", got.PersonalDetails.FullName)
	// The whole object is replaced, so the email is gone and export is blocked.
	assert.Empty(t, got.PersonalDetails.Email)
	assert.Equal(t, 35, got.ATSScore)
	assert.Len(t, got.Experience, 1)
}

func TestApplyCommands(t *testing.T) {
	s, _ := newResumes(t)
	ctx := context.Background()
	r := create(t, s, "u1", minimalJSON)

	_, outcomes, err := s.Apply(ctx, "u1", r.ID, []editor.Command{{Action: editor.ActionAddSkill}})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	skillID := outcomes[0].CreatedID
	require.NotEmpty(t, skillID)

	got, _, err := s.Apply(ctx, "u1", r.ID, []editor.Command{
		{Action: editor.ActionUpdateSkill, ID: skillID, Field: "name", Value: json.RawMessage(`"Languages"`)},
		{Action: editor.ActionUpdateSkill, ID: skillID, Field: "items", Value: json.RawMessage(`["Go","SQL"]`)},
	})
	require.NoError(t, err)
	require.Len(t, got.Skills, 1)
	assert.Equal(t, "Languages", got.Skills[0].Name)
	assert.Equal(t, []string{"Go", "SQL"}, got.Skills[0].Items)

	stored, err := s.Get(ctx, "u1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Skills, stored.Skills)
}

func TestApplyFailureSavesNothing(t *testing.T) {
	s, _ := newResumes(t)
	ctx := context.Background()
	r := create(t, s, "u1", minimalJSON)

	_, _, err := s.Apply(ctx, "u1", r.ID, []editor.Command{
		{Action: editor.ActionAddProject},
		{Action: editor.ActionReorderSection, Section: "experience", Order: []string{"nope"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPermutation)

	stored, err := s.Get(ctx, "u1", r.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Projects)
}

func TestApplyTemplate(t *testing.T) {
	s, repos := newResumes(t)
	ctx := context.Background()
	r := create(t, s, "u1", minimalJSON)

	tpl := domain.NewTemplate()
	tpl.Name = "Professional Blue ATS"
	tpl.Structure.Colors.Primary = "#0e7490"
	tpl.Structure.Fonts.Heading = "Calibri"
	tpl.Structure.Spacing = "compact"
	require.NoError(t, repos.Templates.Create(ctx, &tpl))

	got, err := s.ApplyTemplate(ctx, "u1", r.ID, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tpl.ID, got.TemplateID)
	assert.Equal(t, "#0e7490", got.Design.AccentColor)
	assert.Equal(t, "Calibri", got.Design.Font)
	assert.Equal(t, domain.LayoutCompact, got.Design.Layout)
	assert.Equal(t, r.PersonalDetails, got.PersonalDetails)
	assert.Equal(t, r.Experience, got.Experience)

	stored, err := repos.Templates.Get(ctx, tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UsageCount)

	_, err = s.ApplyTemplate(ctx, "u1", r.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateEnablesEntriesWithoutFlag(t *testing.T) {
	s, _ := newResumes(t)

	r := create(t, s, "u1", `{"experience": [{"role": "Staff Engineer", "company": "Acme"}]}`)
	require.Len(t, r.Experience, 1)
	assert.True(t, r.Experience[0].Enabled)

	ts, err := export.LoadTemplates("", nil)
	require.NoError(t, err)
	html, err := ts.Render(r.ResumeDocument, 794, false)
	require.NoError(t, err)
	assert.Contains(t, html, "Staff Engineer")
}

func TestCreateReplacesRepeatedIDs(t *testing.T) {
	s, _ := newResumes(t)

	r := create(t, s, "u1", `{
		"experience": [{"id": "x", "role": "A"}, {"id": "x", "role": "B"}],
		"projects": [{"id": "x", "title": "P"}]
	}`)
	require.Len(t, r.Experience, 2)
	assert.Equal(t, "x", r.Experience[0].ID)
	assert.NotEqual(t, "x", r.Experience[1].ID)
	assert.NotEmpty(t, r.Experience[1].ID)
	assert.NotEqual(t, "x", r.Projects[0].ID)

	order := []string{r.Experience[1].ID, r.Experience[0].ID}
	out, _, err := s.Apply(context.Background(), "u1", r.ID, []editor.Command{
		{Action: editor.ActionReorderSection, Section: editor.SectionExperience, Order: order},
	})
	require.NoError(t, err)
	assert.Equal(t, "B", out.Experience[0].Role)
}
