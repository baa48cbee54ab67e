package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
)

func TestResumes(t *testing.T) {
	ctx := context.Background()
	repos := New()
	now := time.Now()

	older := &domain.Resume{UserID: "u1", ResumeDocument: domain.NewDocument(), ATSScore: 40, UpdatedAt: now.Add(-time.Hour)}
	newer := &domain.Resume{UserID: "u1", ResumeDocument: domain.NewDocument(), ATSScore: 61, UpdatedAt: now}
	other := &domain.Resume{UserID: "u2", ResumeDocument: domain.NewDocument(), ATSScore: 90, UpdatedAt: now}
	for _, r := range []*domain.Resume{older, newer, other} {
		require.NoError(t, repos.Resumes.Create(ctx, r))
		require.NotEmpty(t, r.ID)
	}

	list, err := repos.Resumes.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	avg, err := repos.Resumes.AverageATSScore(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 63.67, avg, 0.01)

	got, err := repos.Resumes.Get(ctx, older.ID)
	require.NoError(t, err)
	got.Title = "Changed"
	again, _ := repos.Resumes.Get(ctx, older.ID)
	assert.Equal(t, domain.DefaultTitle, again.Title, "stored copy is isolated")

	require.NoError(t, repos.Resumes.Delete(ctx, older.ID))
	_, err = repos.Resumes.Get(ctx, older.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repos.Resumes.Update(ctx, older), domain.ErrNotFound)
}

func TestUsersUniqueEmail(t *testing.T) {
	ctx := context.Background()
	repos := New()

	require.NoError(t, repos.Users.Create(ctx, &domain.User{Email: "jane@example.com"}))
	assert.ErrorIs(t, repos.Users.Create(ctx, &domain.User{Email: "JANE@example.com"}), domain.ErrAlreadyExists)

	u, err := repos.Users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)

	n, _ := repos.Users.Count(ctx)
	assert.Equal(t, 1, n)
}

func TestTemplatesActiveFilter(t *testing.T) {
	ctx := context.Background()
	repos := New()

	active := domain.NewTemplate()
	active.Name = "Modern"
	inactive := domain.NewTemplate()
	inactive.Name = "Retired"
	inactive.IsActive = false
	require.NoError(t, repos.Templates.Create(ctx, &active))
	require.NoError(t, repos.Templates.Create(ctx, &inactive))

	list, err := repos.Templates.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Modern", list[0].Name)

	all, _ := repos.Templates.List(ctx, false)
	assert.Len(t, all, 2)

	byName, err := repos.Templates.GetByName(ctx, "Retired")
	require.NoError(t, err)
	assert.Equal(t, inactive.ID, byName.ID)
}
