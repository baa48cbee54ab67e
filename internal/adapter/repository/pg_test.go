package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/infrastructure/migration"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), domain.ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}), domain.ErrAlreadyExists)

	other := errors.New("conn reset")
	assert.Equal(t, other, mapErr(other))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(pgconn.CommandTag("DELETE 0"), nil), domain.ErrNotFound)
	assert.NoError(t, affected(pgconn.CommandTag("UPDATE 1"), nil))
	assert.ErrorIs(t, affected(nil, pgx.ErrNoRows), domain.ErrNotFound)
}

func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, migration.RunMigrations(ctx, dsn))

	pool, err := pgxpool.Connect(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	repos := New(pool)

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &domain.User{Name: "Jane", Email: "Jane." + now.Format("150405.000") + "@Example.com", Provider: domain.ProviderLocal, Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Users.Create(ctx, user))
	defer repos.Users.Delete(ctx, user.ID) //nolint:errcheck

	dup := *user
	dup.ID = ""
	assert.ErrorIs(t, repos.Users.Create(ctx, &dup), domain.ErrAlreadyExists)

	byEmail, err := repos.Users.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	doc := domain.NewDocument()
	doc.PersonalDetails.FullName = "Jane Doe"
	doc.Skills = []domain.SkillCategory{{ID: "s1", Name: "Languages", Items: []string{"Go"}, Enabled: true}}
	res := &domain.Resume{UserID: user.ID, ResumeDocument: doc, ATSScore: 70, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Resumes.Create(ctx, res))

	got, err := repos.Resumes.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.PersonalDetails.FullName)
	assert.Equal(t, []string{"Go"}, got.Skills[0].Items)

	list, err := repos.Resumes.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repos.Resumes.Delete(ctx, res.ID))
	_, err = repos.Resumes.Get(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repos.Resumes.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
