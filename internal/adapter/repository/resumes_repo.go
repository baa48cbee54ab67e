package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

const resumeColumns = `id::text, user_id::text, document, ats_score, completion_percentage, is_public, created_at, updated_at`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var r domain.Resume
	var doc []byte
	if err := row.Scan(&r.ID, &r.UserID, &doc, &r.ATSScore, &r.CompletionPercentage, &r.IsPublic, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	r.ResumeDocument = domain.NewDocument()
	if err := decodeJSON(doc, &r.ResumeDocument); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *ResumesRepo) ListByUser(ctx context.Context, userID string) ([]domain.Resume, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE user_id::text = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Resume{}
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, rows.Err()
}

func (r *ResumesRepo) Get(ctx context.Context, id string) (*domain.Resume, error) {
	return scanResume(r.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id::text = $1`, id))
}

func (r *ResumesRepo) Create(ctx context.Context, res *domain.Resume) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	doc, err := json.Marshal(res.ResumeDocument)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO resumes (id, user_id, document, ats_score, completion_percentage, is_public, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		res.ID, res.UserID, doc, res.ATSScore, res.CompletionPercentage, res.IsPublic, res.CreatedAt, res.UpdatedAt)
	return mapErr(err)
}

func (r *ResumesRepo) Update(ctx context.Context, res *domain.Resume) error {
	doc, err := json.Marshal(res.ResumeDocument)
	if err != nil {
		return err
	}
	return affected(r.pool.Exec(ctx, `UPDATE resumes SET document = $2, ats_score = $3, completion_percentage = $4, is_public = $5, updated_at = $6
		WHERE id::text = $1`,
		res.ID, doc, res.ATSScore, res.CompletionPercentage, res.IsPublic, res.UpdatedAt))
}

func (r *ResumesRepo) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM resumes WHERE id::text = $1`, id))
}

func (r *ResumesRepo) Count(ctx context.Context) (int, error) { return count(ctx, r.pool, "resumes") }

func (r *ResumesRepo) AverageATSScore(ctx context.Context) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `SELECT coalesce(avg(ats_score), 0)::float8 FROM resumes`).Scan(&avg)
	return avg, err
}
