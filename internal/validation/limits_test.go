package validation

import (
	"strings"
	"testing"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", Clamp(LimitFullName, "short"))
	assert.Equal(t, strings.Repeat("é", 50), Clamp(LimitFullName, strings.Repeat("é", 60)))
	assert.Equal(t, strings.Repeat("x", 900), Clamp("unknown", strings.Repeat("x", 900)))
}

func TestLimitFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LimitExperienceDescription, LimitFor("experience", "description"))
	assert.Equal(t, LimitSummary, LimitFor("summary", "content"))
	assert.Equal(t, "", LimitFor("experience", "location"))
}

func TestCheckLimits(t *testing.T) {
	t.Parallel()

	doc := domain.NewDocument()
	require.NoError(t, CheckLimits(doc))

	doc.PersonalDetails.FullName = strings.Repeat("n", 51)
	doc.Skills = []domain.SkillCategory{{Name: "Tools", Items: []string{"ok", strings.Repeat("i", 31)}}}
	err := CheckLimits(doc)
	require.Error(t, err)

	errs, ok := err.(ozzo.Errors)
	require.True(t, ok)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "personalDetails.fullName")
	assert.Contains(t, errs, "skills[0].items[1]")
}
