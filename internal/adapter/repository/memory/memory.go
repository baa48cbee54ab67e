// Package memory keeps every repository in process memory. It backs the
// "memory" database driver and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

type table[T any] struct {
	mu   sync.RWMutex
	rows map[string]T
	id   func(*T) *string
}

func newTable[T any](id func(*T) *string) *table[T] {
	return &table[T]{rows: map[string]T{}, id: id}
}

func (t *table[T]) insert(v *T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id := t.id(v); *id == "" {
		*id = uuid.NewString()
	}
	t.rows[*t.id(v)] = *v
}

func (t *table[T]) get(id string) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (t *table[T]) replace(v *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := *t.id(v)
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = *v
	return nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[T]) filter(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, v := range t.rows {
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// New returns a fresh set of empty repositories.
func New() usecase.Repositories {
	return usecase.Repositories{
		Resumes:   &Resumes{t: newTable(func(r *domain.Resume) *string { return &r.ID })},
		Users:     &Users{t: newTable(func(u *domain.User) *string { return &u.ID })},
		Templates: &Templates{t: newTable(func(t *domain.Template) *string { return &t.ID })},
		Blogs:     &Blogs{t: newTable(func(b *domain.BlogPost) *string { return &b.ID })},
		Contacts:  &Contacts{t: newTable(func(c *domain.Contact) *string { return &c.ID })},
		Ping:      func(context.Context) error { return nil },
	}
}

type Resumes struct{ t *table[domain.Resume] }

func (r *Resumes) ListByUser(_ context.Context, userID string) ([]domain.Resume, error) {
	out := r.t.filter(func(v domain.Resume) bool { return v.UserID == userID })
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	for i := range out {
		out[i].ResumeDocument = out[i].ResumeDocument.Clone()
	}
	return out, nil
}

func (r *Resumes) Get(_ context.Context, id string) (*domain.Resume, error) {
	v, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	v.ResumeDocument = v.ResumeDocument.Clone()
	return v, nil
}

func (r *Resumes) Create(_ context.Context, v *domain.Resume) error {
	cp := *v
	cp.ResumeDocument = v.ResumeDocument.Clone()
	r.t.insert(&cp)
	v.ID = cp.ID
	return nil
}

func (r *Resumes) Update(_ context.Context, v *domain.Resume) error {
	cp := *v
	cp.ResumeDocument = v.ResumeDocument.Clone()
	return r.t.replace(&cp)
}

func (r *Resumes) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *Resumes) Count(context.Context) (int, error) { return r.t.count(), nil }

func (r *Resumes) AverageATSScore(context.Context) (float64, error) {
	all := r.t.filter(nil)
	if len(all) == 0 {
		return 0, nil
	}
	sum := 0
	for _, v := range all {
		sum += v.ATSScore
	}
	return float64(sum) / float64(len(all)), nil
}

type Users struct {
	mu sync.Mutex
	t  *table[domain.User]
}

func (u *Users) Create(_ context.Context, v *domain.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.t.filter(func(x domain.User) bool { return strings.EqualFold(x.Email, v.Email) })) > 0 {
		return domain.ErrAlreadyExists
	}
	u.t.insert(v)
	return nil
}

func (u *Users) Get(_ context.Context, id string) (*domain.User, error) { return u.t.get(id) }

func (u *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	found := u.t.filter(func(x domain.User) bool { return strings.EqualFold(x.Email, email) })
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (u *Users) Update(_ context.Context, v *domain.User) error { return u.t.replace(v) }

func (u *Users) List(context.Context) ([]domain.User, error) {
	out := u.t.filter(nil)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *Users) Delete(_ context.Context, id string) error { return u.t.delete(id) }

func (u *Users) Count(context.Context) (int, error) { return u.t.count(), nil }

type Templates struct{ t *table[domain.Template] }

func (r *Templates) List(_ context.Context, activeOnly bool) ([]domain.Template, error) {
	out := r.t.filter(func(v domain.Template) bool { return !activeOnly || v.IsActive })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Templates) Get(_ context.Context, id string) (*domain.Template, error) { return r.t.get(id) }

func (r *Templates) GetByName(_ context.Context, name string) (*domain.Template, error) {
	found := r.t.filter(func(v domain.Template) bool { return v.Name == name })
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (r *Templates) Create(_ context.Context, v *domain.Template) error {
	r.t.insert(v)
	return nil
}

func (r *Templates) Update(_ context.Context, v *domain.Template) error { return r.t.replace(v) }

func (r *Templates) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *Templates) Count(context.Context) (int, error) { return r.t.count(), nil }

type Blogs struct{ t *table[domain.BlogPost] }

func (r *Blogs) List(_ context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	out := r.t.filter(func(v domain.BlogPost) bool { return !publishedOnly || v.Published })
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Blogs) Get(_ context.Context, id string) (*domain.BlogPost, error) { return r.t.get(id) }

func (r *Blogs) GetBySlug(_ context.Context, slug string) (*domain.BlogPost, error) {
	found := r.t.filter(func(v domain.BlogPost) bool { return v.Slug == slug })
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (r *Blogs) Create(_ context.Context, v *domain.BlogPost) error {
	r.t.insert(v)
	return nil
}

func (r *Blogs) Update(_ context.Context, v *domain.BlogPost) error { return r.t.replace(v) }

func (r *Blogs) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *Blogs) Count(context.Context) (int, error) { return r.t.count(), nil }

type Contacts struct{ t *table[domain.Contact] }

func (r *Contacts) Create(_ context.Context, v *domain.Contact) error {
	r.t.insert(v)
	return nil
}

func (r *Contacts) List(context.Context) ([]domain.Contact, error) {
	out := r.t.filter(nil)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Contacts) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *Contacts) Count(context.Context) (int, error) { return r.t.count(), nil }
