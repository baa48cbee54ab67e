// Package docstore implements the usecase repositories on Cloud Firestore.
// Entities are stored as their JSON field maps, one document per entity
// keyed by the entity id.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

// Collection names.
const (
	ResumesCollection   = "resumes"
	UsersCollection     = "users"
	TemplatesCollection = "templates"
	BlogsCollection     = "blogs"
	ContactsCollection  = "contacts"
)

// New returns the repositories backed by client.
func New(client *firestore.Client) usecase.Repositories {
	return usecase.Repositories{
		Resumes:   &Resumes{c: newCollection(client, ResumesCollection, func(r *domain.Resume) *string { return &r.ID })},
		Users:     &Users{c: newCollection(client, UsersCollection, func(u *domain.User) *string { return &u.ID })},
		Templates: &Templates{c: newCollection(client, TemplatesCollection, func(t *domain.Template) *string { return &t.ID })},
		Blogs:     &Blogs{c: newCollection(client, BlogsCollection, func(b *domain.BlogPost) *string { return &b.ID })},
		Contacts:  &Contacts{c: newCollection(client, ContactsCollection, func(c *domain.Contact) *string { return &c.ID })},
		Ping: func(ctx context.Context) error {
			_, err := client.Collection(UsersCollection).Limit(1).Documents(ctx).GetAll()
			return err
		},
	}
}

type collection[T any] struct {
	client *firestore.Client
	ref    *firestore.CollectionRef
	id     func(*T) *string
}

func newCollection[T any](client *firestore.Client, name string, id func(*T) *string) collection[T] {
	return collection[T]{client: client, ref: client.Collection(name), id: id}
}

func (c collection[T]) create(ctx context.Context, v *T) error {
	id := c.id(v)
	if *id == "" {
		*id = uuid.NewString()
	}
	data, err := encode(v)
	if err != nil {
		return err
	}
	_, err = c.ref.Doc(*id).Create(ctx, data)
	return mapErr(err)
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	snap, err := c.ref.Doc(id).Get(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return decode[T](snap)
}

// replace overwrites an existing document; a missing one is ErrNotFound.
func (c collection[T]) replace(ctx context.Context, v *T) error {
	id := *c.id(v)
	if id == "" {
		return domain.ErrNotFound
	}
	data, err := encode(v)
	if err != nil {
		return err
	}
	doc := c.ref.Doc(id)
	err = c.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(doc); err != nil {
			return err
		}
		return tx.Set(doc, data)
	})
	return mapErr(err)
}

func (c collection[T]) delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNotFound
	}
	_, err := c.ref.Doc(id).Delete(ctx, firestore.Exists)
	return mapErr(err)
}

func (c collection[T]) query(ctx context.Context, q firestore.Query) ([]T, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(snaps))
	for _, s := range snaps {
		v, err := decode[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (c collection[T]) all(ctx context.Context) ([]T, error) {
	return c.query(ctx, c.ref.Query)
}

func (c collection[T]) first(ctx context.Context, path string, value interface{}) (*T, error) {
	found, err := c.query(ctx, c.ref.Where(path, "==", value).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domain.ErrNotFound
	}
	return &found[0], nil
}

func (c collection[T]) count(ctx context.Context) (int, error) {
	snaps, err := c.ref.Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return len(snaps), nil
}

// encode converts v to the field map of its JSON form.
func encode(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode[T any](snap *firestore.DocumentSnapshot) (*T, error) {
	raw, err := json.Marshal(snap.Data())
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", snap.Ref.ID, err)
	}
	return &v, nil
}

func mapErr(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return nil
	case codes.NotFound:
		return domain.ErrNotFound
	case codes.AlreadyExists:
		return domain.ErrAlreadyExists
	default:
		return err
	}
}
