package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

//go:embed seeds/*.yaml
var seeds embed.FS

// SeedResult counts the rows a Seed run created.
type SeedResult struct {
	Templates int
	Blogs     int
}

// Seed loads the embedded catalog templates and blog posts. Entries that
// already exist by template name or blog slug are skipped.
func Seed(ctx context.Context, repos usecase.Repositories, now time.Time) (SeedResult, error) {
	var res SeedResult

	var templates []domain.Template
	if err := readSeed("seeds/templates.yaml", &templates); err != nil {
		return res, err
	}
	for _, t := range templates {
		_, err := repos.Templates.GetByName(ctx, t.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return res, err
		}
		if t.Category == "" {
			t.Category = domain.DefaultTemplateCategory
		}
		t.CreatedAt, t.UpdatedAt = now, now
		if err := repos.Templates.Create(ctx, &t); err != nil {
			return res, fmt.Errorf("seed template %q: %w", t.Name, err)
		}
		res.Templates++
	}

	var posts []domain.BlogPost
	if err := readSeed("seeds/blogs.yaml", &posts); err != nil {
		return res, err
	}
	for _, p := range posts {
		p.Normalize()
		_, err := repos.Blogs.GetBySlug(ctx, p.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return res, err
		}
		p.CreatedAt, p.UpdatedAt = now, now
		if err := repos.Blogs.Create(ctx, &p); err != nil {
			return res, fmt.Errorf("seed blog %q: %w", p.Slug, err)
		}
		res.Blogs++
	}

	slog.Info("Seed completed", "templates", res.Templates, "blogs", res.Blogs)
	return res, nil
}

func readSeed(name string, v interface{}) error {
	raw, err := seeds.ReadFile(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
