package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository/memory"
	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

func TestStats(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repos.Users.Create(ctx, &domain.User{Email: "a@b.co", CreatedAt: now}))
	require.NoError(t, repos.Contacts.Create(ctx, &domain.Contact{Name: "x", CreatedAt: now}))
	for _, score := range []int{60, 71} {
		require.NoError(t, repos.Resumes.Create(ctx, &domain.Resume{UserID: "u", ATSScore: score}))
	}

	st, err := usecase.NewAdminService(repos, discard()).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.Stats{Users: 1, Contacts: 1, Blogs: 0, Templates: 0, AvgATSScore: 66}, st)
}

func TestBlogLifecycle(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()
	admin := usecase.NewAdminService(repos, discard())
	public := usecase.NewPublicService(repos)

	_, err := admin.CreateBlog(ctx, json.RawMessage(`{"title": "Only a title"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	p, err := admin.CreateBlog(ctx, json.RawMessage(`{"title": "Crème Brûlée Tips!", "excerpt": "e", "content": "c"}`))
	require.NoError(t, err)
	assert.Equal(t, "creme-brulee-tips", p.Slug)
	assert.Equal(t, domain.DefaultBlogAuthor, p.Author)
	assert.True(t, p.Published)

	bySlug, err := public.Blog(ctx, "creme-brulee-tips")
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySlug.ID)

	updated, err := admin.UpdateBlog(ctx, p.ID, json.RawMessage(`{"title": "New Title", "published": false}`))
	require.NoError(t, err)
	assert.Equal(t, "new-title", updated.Slug)
	assert.Equal(t, "c", updated.Content)
	assert.Equal(t, p.CreatedAt, updated.CreatedAt)

	_, err = public.Blog(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Post not found")

	posts, err := public.Blogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	require.NoError(t, admin.DeleteBlog(ctx, p.ID))
	assert.ErrorIs(t, admin.DeleteBlog(ctx, p.ID), domain.ErrNotFound)
}

func TestTemplateAdmin(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()
	admin := usecase.NewAdminService(repos, discard())
	public := usecase.NewPublicService(repos)

	tpl, err := admin.CreateTemplate(ctx, json.RawMessage(`{"name": "Minimal", "description": "Plain", "usageCount": 9}`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTemplateCategory, tpl.Category)
	assert.True(t, tpl.IsActive)
	assert.Zero(t, tpl.UsageCount)

	_, err = admin.UpdateTemplate(ctx, tpl.ID, json.RawMessage(`{"isActive": false}`))
	require.NoError(t, err)

	active, err := public.Templates(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := admin.Templates(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = public.Template(ctx, "missing")
	assert.EqualError(t, err, "Template not found")

	_, err = admin.CreateTemplate(ctx, json.RawMessage(`{"description": "no name"}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContact(t *testing.T) {
	repos := memory.New()
	ctx := context.Background()
	public := usecase.NewPublicService(repos)

	err := public.Contact(ctx, "Jane", "", "hello")
	assert.EqualError(t, err, "All fields are required")

	require.NoError(t, public.Contact(ctx, "Jane", "jane@example.com", "hello"))
	list, err := usecase.NewAdminService(repos, discard()).Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hello", list[0].Message)
}
