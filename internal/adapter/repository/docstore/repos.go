package docstore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"resume-builder/internal/domain"
)

type Resumes struct{ c collection[domain.Resume] }

func (r *Resumes) ListByUser(ctx context.Context, userID string) ([]domain.Resume, error) {
	out, err := r.c.query(ctx, r.c.ref.Where("userId", "==", userID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *Resumes) Get(ctx context.Context, id string) (*domain.Resume, error) { return r.c.get(ctx, id) }
func (r *Resumes) Create(ctx context.Context, v *domain.Resume) error        { return r.c.create(ctx, v) }
func (r *Resumes) Update(ctx context.Context, v *domain.Resume) error        { return r.c.replace(ctx, v) }
func (r *Resumes) Delete(ctx context.Context, id string) error              { return r.c.delete(ctx, id) }
func (r *Resumes) Count(ctx context.Context) (int, error)                   { return r.c.count(ctx) }

func (r *Resumes) AverageATSScore(ctx context.Context) (float64, error) {
	iter := r.c.ref.Select("atsScore").Documents(ctx)
	defer iter.Stop()

	var sum, n float64
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		if v, err := snap.DataAt("atsScore"); err == nil {
			switch s := v.(type) {
			case int64:
				sum += float64(s)
			case float64:
				sum += s
			}
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return sum / n, nil
}

type Users struct{ c collection[domain.User] }

// Create enforces email uniqueness inside a transaction.
func (r *Users) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(u.Email)
	err := r.c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(r.c.ref.Where("email", "==", u.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(snaps) > 0 {
			return domain.ErrAlreadyExists
		}
		if u.ID == "" {
			u.ID = r.c.ref.NewDoc().ID
		}
		data, err := encode(u)
		if err != nil {
			return err
		}
		// PasswordHash is not part of the JSON form.
		data["passwordHash"] = u.PasswordHash
		return tx.Create(r.c.ref.Doc(u.ID), data)
	})
	return mapErr(err)
}

func (r *Users) withHash(ctx context.Context, u *domain.User) (*domain.User, error) {
	snap, err := r.c.ref.Doc(u.ID).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	if v, err := snap.DataAt("passwordHash"); err == nil {
		u.PasswordHash, _ = v.(string)
	}
	return u, nil
}

func (r *Users) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := r.c.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.withHash(ctx, u)
}

func (r *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := r.c.first(ctx, "email", strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	return r.withHash(ctx, u)
}

func (r *Users) Update(ctx context.Context, u *domain.User) error {
	data, err := encode(u)
	if err != nil {
		return err
	}
	data["passwordHash"] = u.PasswordHash
	doc := r.c.ref.Doc(u.ID)
	err = r.c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(doc); err != nil {
			return err
		}
		return tx.Set(doc, data)
	})
	return mapErr(err)
}

func (r *Users) List(ctx context.Context) ([]domain.User, error) {
	out, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Users) Delete(ctx context.Context, id string) error { return r.c.delete(ctx, id) }
func (r *Users) Count(ctx context.Context) (int, error)      { return r.c.count(ctx) }

type Templates struct{ c collection[domain.Template] }

func (r *Templates) List(ctx context.Context, activeOnly bool) ([]domain.Template, error) {
	q := r.c.ref.Query
	if activeOnly {
		q = q.Where("isActive", "==", true)
	}
	out, err := r.c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Templates) Get(ctx context.Context, id string) (*domain.Template, error) {
	return r.c.get(ctx, id)
}

func (r *Templates) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	return r.c.first(ctx, "name", name)
}

func (r *Templates) Create(ctx context.Context, v *domain.Template) error { return r.c.create(ctx, v) }
func (r *Templates) Update(ctx context.Context, v *domain.Template) error { return r.c.replace(ctx, v) }
func (r *Templates) Delete(ctx context.Context, id string) error         { return r.c.delete(ctx, id) }
func (r *Templates) Count(ctx context.Context) (int, error)              { return r.c.count(ctx) }

type Blogs struct{ c collection[domain.BlogPost] }

func (r *Blogs) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	q := r.c.ref.Query
	if publishedOnly {
		q = q.Where("published", "==", true)
	}
	out, err := r.c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Blogs) Get(ctx context.Context, id string) (*domain.BlogPost, error) { return r.c.get(ctx, id) }

func (r *Blogs) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return r.c.first(ctx, "slug", slug)
}

func (r *Blogs) Create(ctx context.Context, v *domain.BlogPost) error { return r.c.create(ctx, v) }
func (r *Blogs) Update(ctx context.Context, v *domain.BlogPost) error { return r.c.replace(ctx, v) }
func (r *Blogs) Delete(ctx context.Context, id string) error         { return r.c.delete(ctx, id) }
func (r *Blogs) Count(ctx context.Context) (int, error)              { return r.c.count(ctx) }

type Contacts struct{ c collection[domain.Contact] }

func (r *Contacts) Create(ctx context.Context, v *domain.Contact) error { return r.c.create(ctx, v) }

func (r *Contacts) List(ctx context.Context) ([]domain.Contact, error) {
	out, err := r.c.all(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Contacts) Delete(ctx context.Context, id string) error { return r.c.delete(ctx, id) }
func (r *Contacts) Count(ctx context.Context) (int, error)      { return r.c.count(ctx) }
