package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

type BlogsRepo struct {
	pool *pgxpool.Pool
}

func NewBlogsRepo(pool *pgxpool.Pool) *BlogsRepo {
	return &BlogsRepo{pool: pool}
}

const blogColumns = `id::text, title, slug, excerpt, content, image, author, category, tags, published, created_at, updated_at`

func scanBlog(row pgx.Row) (*domain.BlogPost, error) {
	var b domain.BlogPost
	if err := row.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Image, &b.Author, &b.Category,
		&b.Tags, &b.Published, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	return &b, nil
}

func (r *BlogsRepo) List(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE (NOT $1 OR published) ORDER BY created_at DESC`, publishedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.BlogPost{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *BlogsRepo) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	return scanBlog(r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id::text = $1`, id))
}

func (r *BlogsRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	return scanBlog(r.pool.QueryRow(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug))
}

func (r *BlogsRepo) Create(ctx context.Context, b *domain.BlogPost) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO blog_posts (id, title, slug, excerpt, content, image, author, category, tags, published, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Image, b.Author, b.Category, b.Tags, b.Published, b.CreatedAt, b.UpdatedAt)
	return mapErr(err)
}

func (r *BlogsRepo) Update(ctx context.Context, b *domain.BlogPost) error {
	return affected(r.pool.Exec(ctx, `UPDATE blog_posts SET title = $2, slug = $3, excerpt = $4, content = $5, image = $6, author = $7,
		category = $8, tags = $9, published = $10, updated_at = $11 WHERE id::text = $1`,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.Image, b.Author, b.Category, b.Tags, b.Published, b.UpdatedAt))
}

func (r *BlogsRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id::text = $1`, id))
}

func (r *BlogsRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.pool, "blog_posts") }

type ContactsRepo struct {
	pool *pgxpool.Pool
}

func NewContactsRepo(pool *pgxpool.Pool) *ContactsRepo {
	return &ContactsRepo{pool: pool}
}

func (r *ContactsRepo) Create(ctx context.Context, c *domain.Contact) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO contacts (id, name, email, message, created_at) VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.Name, c.Email, c.Message, c.CreatedAt)
	return mapErr(err)
}

func (r *ContactsRepo) List(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx, `SELECT id::text, name, email, message, created_at FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ContactsRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM contacts WHERE id::text = $1`, id))
}

func (r *ContactsRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.pool, "contacts") }
