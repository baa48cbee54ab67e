// Package repository implements the usecase repositories on PostgreSQL
// through a pgx pool.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"
)

// New returns the repositories for pool.
func New(pool *pgxpool.Pool) usecase.Repositories {
	return usecase.Repositories{
		Resumes:   NewResumesRepo(pool),
		Users:     NewUsersRepo(pool),
		Templates: NewTemplatesRepo(pool),
		Blogs:     NewBlogsRepo(pool),
		Contacts:  NewContactsRepo(pool),
		Ping:      pool.Ping,
	}
}

// mapErr translates driver errors into domain sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.ConstraintName)
	}
	return err
}

// affected turns a zero-row UPDATE or DELETE into ErrNotFound.
func affected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func count(ctx context.Context, pool *pgxpool.Pool, table string) (int, error) {
	var n int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n)
	return n, err
}

// decodeJSON unmarshals a JSONB column, treating NULL as the zero value.
func decodeJSON(raw []byte, v interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
