package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"time"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"resume-builder/internal/domain"
)

// Stats is the admin dashboard summary.
type Stats struct {
	Users       int `json:"users"`
	Contacts    int `json:"contacts"`
	Blogs       int `json:"blogs"`
	Templates   int `json:"templates"`
	AvgATSScore int `json:"avgAtsScore"`
}

type AdminService struct {
	repos  Repositories
	logger *slog.Logger
	now    func() time.Time
}

func NewAdminService(repos Repositories, logger *slog.Logger) *AdminService {
	return &AdminService{repos: repos, logger: logger.With("component", "admin"), now: time.Now}
}

func (s *AdminService) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var err error
	if st.Users, err = s.repos.Users.Count(ctx); err != nil {
		return st, err
	}
	if st.Contacts, err = s.repos.Contacts.Count(ctx); err != nil {
		return st, err
	}
	if st.Blogs, err = s.repos.Blogs.Count(ctx); err != nil {
		return st, err
	}
	if st.Templates, err = s.repos.Templates.Count(ctx); err != nil {
		return st, err
	}
	avg, err := s.repos.Resumes.AverageATSScore(ctx)
	if err != nil {
		return st, err
	}
	st.AvgATSScore = int(math.Round(avg))
	return st, nil
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.repos.Users.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.repos.Users.Delete(ctx, id)
}

func (s *AdminService) Contacts(ctx context.Context) ([]domain.Contact, error) {
	return s.repos.Contacts.List(ctx)
}

func (s *AdminService) DeleteContact(ctx context.Context, id string) error {
	return s.repos.Contacts.Delete(ctx, id)
}

func (s *AdminService) CreateBlog(ctx context.Context, raw json.RawMessage) (*domain.BlogPost, error) {
	p := &domain.BlogPost{Published: true}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "invalid blog post: %v", err)
	}
	p.ID = ""
	if err := validateBlog(p); err != nil {
		return nil, err
	}
	p.Normalize()
	p.CreatedAt = s.now().UTC()
	p.UpdatedAt = p.CreatedAt
	if err := s.repos.Blogs.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateBlog overlays the fields present in raw onto the stored post. The
// slug follows the title.
func (s *AdminService) UpdateBlog(ctx context.Context, id string, raw json.RawMessage) (*domain.BlogPost, error) {
	p, err := s.repos.Blogs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	created := p.CreatedAt
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "invalid blog post: %v", err)
	}
	p.ID, p.CreatedAt = id, created
	if err := validateBlog(p); err != nil {
		return nil, err
	}
	p.Normalize()
	p.UpdatedAt = s.now().UTC()
	if err := s.repos.Blogs.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *AdminService) DeleteBlog(ctx context.Context, id string) error {
	return s.repos.Blogs.Delete(ctx, id)
}

func (s *AdminService) Templates(ctx context.Context) ([]domain.Template, error) {
	return s.repos.Templates.List(ctx, false)
}

func (s *AdminService) CreateTemplate(ctx context.Context, raw json.RawMessage) (*domain.Template, error) {
	t := domain.NewTemplate()
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "invalid template: %v", err)
	}
	t.ID, t.UsageCount = "", 0
	if err := validateTemplate(&t); err != nil {
		return nil, err
	}
	t.CreatedAt = s.now().UTC()
	t.UpdatedAt = t.CreatedAt
	if err := s.repos.Templates.Create(ctx, &t); err != nil {
		return nil, err
	}
	s.logger.Info("template created", "template_id", t.ID, "name", t.Name)
	return &t, nil
}

func (s *AdminService) UpdateTemplate(ctx context.Context, id string, raw json.RawMessage) (*domain.Template, error) {
	t, err := s.repos.Templates.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	created, usage := t.CreatedAt, t.UsageCount
	if err := json.Unmarshal(raw, t); err != nil {
		return nil, domain.Errorf(domain.ErrInvalidInput, "invalid template: %v", err)
	}
	t.ID, t.CreatedAt, t.UsageCount = id, created, usage
	if err := validateTemplate(t); err != nil {
		return nil, err
	}
	t.UpdatedAt = s.now().UTC()
	if err := s.repos.Templates.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *AdminService) DeleteTemplate(ctx context.Context, id string) error {
	return s.repos.Templates.Delete(ctx, id)
}

func validateBlog(p *domain.BlogPost) error {
	err := ozzo.ValidateStruct(p,
		ozzo.Field(&p.Title, ozzo.Required),
		ozzo.Field(&p.Excerpt, ozzo.Required),
		ozzo.Field(&p.Content, ozzo.Required),
	)
	if err != nil {
		return domain.Errorf(domain.ErrInvalidInput, "%v", err)
	}
	return nil
}

func validateTemplate(t *domain.Template) error {
	err := ozzo.ValidateStruct(t,
		ozzo.Field(&t.Name, ozzo.Required),
		ozzo.Field(&t.Description, ozzo.Required),
	)
	if err != nil {
		return domain.Errorf(domain.ErrInvalidInput, "%v", err)
	}
	return nil
}
