package usecase

import (
	"context"
	"encoding/json"
	"io"

	"resume-builder/internal/domain"
	"resume-builder/internal/export"
	"resume-builder/pkg/ai"
)

// ResumeRepo persists resumes. Get returns domain.ErrNotFound for unknown
// ids; ListByUser is ordered by UpdatedAt, newest first.
type ResumeRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Resume, error)
	Get(ctx context.Context, id string) (*domain.Resume, error)
	Create(ctx context.Context, r *domain.Resume) error
	Update(ctx context.Context, r *domain.Resume) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	AverageATSScore(ctx context.Context) (float64, error)
}

// UserRepo persists accounts. Emails are unique; Create returns
// domain.ErrAlreadyExists on a duplicate.
type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type TemplateRepo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Template, error)
	Get(ctx context.Context, id string) (*domain.Template, error)
	GetByName(ctx context.Context, name string) (*domain.Template, error)
	Create(ctx context.Context, t *domain.Template) error
	Update(ctx context.Context, t *domain.Template) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type BlogRepo interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	Get(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	Create(ctx context.Context, p *domain.BlogPost) error
	Update(ctx context.Context, p *domain.BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ContactRepo interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories bundles one driver's repositories.
type Repositories struct {
	Resumes   ResumeRepo
	Users     UserRepo
	Templates TemplateRepo
	Blogs     BlogRepo
	Contacts  ContactRepo
	// Ping reports whether the backing store is reachable.
	Ping func(ctx context.Context) error
}

// Exporter turns a document into a PDF.
type Exporter interface {
	Export(ctx context.Context, doc domain.ResumeDocument) (*export.Result, error)
	RenderHTML(doc domain.ResumeDocument, preview bool) (string, error)
}

// Archive stores produced PDFs. key is a slash-separated object path.
type Archive interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
}

// Assistant is the AI text collaborator.
type Assistant interface {
	Transform(ctx context.Context, op ai.Operation, text string) (string, error)
	Summary(ctx context.Context, doc domain.ResumeDocument) (string, error)
	Chat(ctx context.Context, prompt string) (string, error)
	Analyze(ctx context.Context, resumeData json.RawMessage) (string, error)
}
