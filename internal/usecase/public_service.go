package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"resume-builder/internal/domain"
)

// PublicService serves the unauthenticated catalog and contact surface.
type PublicService struct {
	repos Repositories
	now   func() time.Time
}

func NewPublicService(repos Repositories) *PublicService {
	return &PublicService{repos: repos, now: time.Now}
}

func (s *PublicService) Contact(ctx context.Context, name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return domain.Errorf(domain.ErrInvalidInput, "All fields are required")
	}
	return s.repos.Contacts.Create(ctx, &domain.Contact{
		Name: name, Email: email, Message: message, CreatedAt: s.now().UTC(),
	})
}

func (s *PublicService) Blogs(ctx context.Context) ([]domain.BlogPost, error) {
	return s.repos.Blogs.List(ctx, true)
}

// Blog looks a published post up by id, then by slug.
func (s *PublicService) Blog(ctx context.Context, key string) (*domain.BlogPost, error) {
	p, err := s.repos.Blogs.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		p, err = s.repos.Blogs.GetBySlug(ctx, key)
	}
	if errors.Is(err, domain.ErrNotFound) || (err == nil && !p.Published) {
		return nil, domain.Errorf(domain.ErrNotFound, "Post not found")
	}
	return p, err
}

func (s *PublicService) Templates(ctx context.Context) ([]domain.Template, error) {
	return s.repos.Templates.List(ctx, true)
}

func (s *PublicService) Template(ctx context.Context, id string) (*domain.Template, error) {
	t, err := s.repos.Templates.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.Errorf(domain.ErrNotFound, "Template not found")
	}
	return t, err
}
