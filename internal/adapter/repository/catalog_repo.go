package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

type TemplatesRepo struct {
	pool *pgxpool.Pool
}

func NewTemplatesRepo(pool *pgxpool.Pool) *TemplatesRepo {
	return &TemplatesRepo{pool: pool}
}

const templateColumns = `id::text, name, description, category, thumbnail, is_premium, structure, html, css, is_active, usage_count, created_at, updated_at`

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var t domain.Template
	var structure []byte
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.Thumbnail, &t.IsPremium, &structure,
		&t.HTML, &t.CSS, &t.IsActive, &t.UsageCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	if err := decodeJSON(structure, &t.Structure); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplatesRepo) List(ctx context.Context, activeOnly bool) ([]domain.Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+templateColumns+` FROM templates WHERE (NOT $1 OR is_active) ORDER BY created_at DESC`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []domain.Template{}
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TemplatesRepo) Get(ctx context.Context, id string) (*domain.Template, error) {
	return scanTemplate(r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE id::text = $1`, id))
}

func (r *TemplatesRepo) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	return scanTemplate(r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE name = $1`, name))
}

func (r *TemplatesRepo) Create(ctx context.Context, t *domain.Template) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	structure, err := json.Marshal(t.Structure)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO templates (id, name, description, category, thumbnail, is_premium, structure, html, css, is_active, usage_count, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		t.ID, t.Name, t.Description, t.Category, t.Thumbnail, t.IsPremium, structure, t.HTML, t.CSS, t.IsActive, t.UsageCount, t.CreatedAt, t.UpdatedAt)
	return mapErr(err)
}

func (r *TemplatesRepo) Update(ctx context.Context, t *domain.Template) error {
	structure, err := json.Marshal(t.Structure)
	if err != nil {
		return err
	}
	return affected(r.pool.Exec(ctx, `UPDATE templates SET name = $2, description = $3, category = $4, thumbnail = $5, is_premium = $6,
		structure = $7, html = $8, css = $9, is_active = $10, usage_count = $11, updated_at = $12 WHERE id::text = $1`,
		t.ID, t.Name, t.Description, t.Category, t.Thumbnail, t.IsPremium, structure, t.HTML, t.CSS, t.IsActive, t.UsageCount, t.UpdatedAt))
}

func (r *TemplatesRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM templates WHERE id::text = $1`, id))
}

func (r *TemplatesRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.pool, "templates") }
