package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/quality"
	"resume-builder/internal/validation"
)

// ResumeService owns resume persistence. Every call is scoped to the
// calling user; resumes of other users are reported as not found.
type ResumeService struct {
	resumes   ResumeRepo
	templates TemplateRepo
	logger    *slog.Logger
	now       func() time.Time
}

func NewResumeService(repos Repositories, logger *slog.Logger) *ResumeService {
	return &ResumeService{
		resumes:   repos.Resumes,
		templates: repos.Templates,
		logger:    logger.With("component", "resumes"),
		now:       time.Now,
	}
}

func (s *ResumeService) List(ctx context.Context, userID string) ([]domain.Resume, error) {
	return s.resumes.ListByUser(ctx, userID)
}

func (s *ResumeService) Get(ctx context.Context, userID, id string) (*domain.Resume, error) {
	r, err := s.resumes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Create stores a new resume. raw may be empty, in which case the editor
// defaults are used.
func (s *ResumeService) Create(ctx context.Context, userID string, raw json.RawMessage) (*domain.Resume, error) {
	doc := domain.NewDocument()
	if len(raw) > 0 {
		if err := model.ValidateDocument(raw); err != nil {
			return nil, err
		}
		var p domain.Patch
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		doc = p.Apply(doc)
	}
	now := s.now().UTC()
	r := &domain.Resume{UserID: userID, ResumeDocument: doc, CreatedAt: now, UpdatedAt: now}
	if err := s.prepare(r); err != nil {
		return nil, err
	}
	if err := s.resumes.Create(ctx, r); err != nil {
		return nil, err
	}
	s.logger.Info("resume created", "resume_id", r.ID, "user_id", userID)
	return r, nil
}

// Update replaces the top-level fields present in raw.
func (s *ResumeService) Update(ctx context.Context, userID, id string, raw json.RawMessage) (*domain.Resume, error) {
	if err := model.ValidateDocument(raw); err != nil {
		return nil, err
	}
	var p domain.Patch
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	r.ResumeDocument = p.Apply(r.ResumeDocument)
	return r, s.save(ctx, r)
}

func (s *ResumeService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.resumes.Delete(ctx, id)
}

// Apply runs editor commands in order against the stored document and
// persists the result once. Nothing is saved when a command fails.
func (s *ResumeService) Apply(ctx context.Context, userID, id string, cmds []editor.Command) (*domain.Resume, []editor.Outcome, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	store := editor.NewStore(r.ResumeDocument)
	outcomes, err := store.Apply(cmds)
	if err != nil {
		return nil, nil, err
	}
	r.ResumeDocument = store.Document()
	if err := s.save(ctx, r); err != nil {
		return nil, nil, err
	}
	return r, outcomes, nil
}

// ApplyTemplate writes the template id and its design onto the resume and
// counts the use. Document content is untouched.
func (s *ResumeService) ApplyTemplate(ctx context.Context, userID, id, templateID string) (*domain.Resume, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	t, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	design := t.DesignFor(r.Design)
	store := editor.NewStore(r.ResumeDocument)
	store.SetFields(domain.Patch{TemplateID: &t.ID, Design: &design})
	r.ResumeDocument = store.Document()
	if err := s.save(ctx, r); err != nil {
		return nil, err
	}

	t.UsageCount++
	t.UpdatedAt = s.now().UTC()
	if err := s.templates.Update(ctx, t); err != nil {
		s.logger.Warn("template usage not counted", "template_id", t.ID, "error", err.Error())
	}
	return r, nil
}

func (s *ResumeService) save(ctx context.Context, r *domain.Resume) error {
	if err := s.prepare(r); err != nil {
		return err
	}
	r.UpdatedAt = s.now().UTC()
	return s.resumes.Update(ctx, r)
}

// prepare assigns missing or repeated entry ids, enforces character limits and
// recomputes the derived scores.
func (s *ResumeService) prepare(r *domain.Resume) error {
	assignIDs(&r.ResumeDocument)
	if err := validation.CheckLimits(r.ResumeDocument); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	r.ATSScore = quality.Evaluate(r.ResumeDocument).Score
	r.CompletionPercentage = quality.Completion(r.ResumeDocument)
	return nil
}

// assignIDs gives every entry an id unique within the document. Empty ids
// and ids already seen earlier in the document are replaced.
func assignIDs(doc *domain.ResumeDocument) {
	seen := map[string]struct{}{}
	fill := func(id *string) {
		if _, dup := seen[*id]; *id == "" || dup {
			*id = uuid.NewString()
		}
		seen[*id] = struct{}{}
	}
	for i := range doc.Experience {
		fill(&doc.Experience[i].ID)
	}
	for i := range doc.Education {
		fill(&doc.Education[i].ID)
	}
	for i := range doc.Skills {
		fill(&doc.Skills[i].ID)
	}
	for i := range doc.Projects {
		fill(&doc.Projects[i].ID)
	}
	for i := range doc.Certifications {
		fill(&doc.Certifications[i].ID)
	}
}
