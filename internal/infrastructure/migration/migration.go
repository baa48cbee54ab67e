// Package migration applies the PostgreSQL schema and loads seed content.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var migrations embed.FS

// gooseUp is swapped in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// RunMigrations applies every pending migration against dsn.
func RunMigrations(ctx context.Context, dsn string) error {
	slog.Info("Starting database migrations")

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUp(ctx, db, "sql"); err != nil {
		slog.Error("Migration failed", "error", err.Error())
		return err
	}

	slog.Info("All migrations completed successfully")
	return nil
}
