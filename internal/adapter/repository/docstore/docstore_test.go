package docstore

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"resume-builder/internal/domain"
)

func TestMapErr(t *testing.T) {
	assert.NoError(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(status.Error(codes.NotFound, "missing")), domain.ErrNotFound)
	assert.ErrorIs(t, mapErr(status.Error(codes.AlreadyExists, "dup")), domain.ErrAlreadyExists)

	other := errors.New("unavailable")
	assert.Equal(t, other, mapErr(other))
}

func TestEncodeUsesWireNames(t *testing.T) {
	u := domain.User{ID: "u1", Email: "a@b.co", PasswordHash: "secret", Role: domain.RoleAdmin}
	m, err := encode(u)
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", m["email"])
	assert.Equal(t, "admin", m["role"])
	assert.NotContains(t, m, "passwordHash")
	assert.NotContains(t, m, "PasswordHash")
}

// Runs against the Firestore emulator when FIRESTORE_EMULATOR_HOST is set.
func TestEmulatorUsers(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "resume-builder-test")
	require.NoError(t, err)
	defer client.Close()
	repos := New(client)

	now := time.Now().UTC()
	email := "Emu." + now.Format("150405.000000") + "@Example.com"
	u := &domain.User{Name: "Emu", Email: email, PasswordHash: "hash", Role: domain.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repos.Users.Create(ctx, u))
	defer repos.Users.Delete(ctx, u.ID) //nolint:errcheck

	dup := &domain.User{Name: "Dup", Email: email}
	assert.ErrorIs(t, repos.Users.Create(ctx, dup), domain.ErrAlreadyExists)

	got, err := repos.Users.GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)

	_, err = repos.Users.Get(ctx, "missing-user")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repos.Users.Update(ctx, &domain.User{ID: "missing-user"}), domain.ErrNotFound)
}
