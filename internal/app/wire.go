package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/adapter/repository/docstore"
	"resume-builder/internal/adapter/repository/memory"
	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"
)

// NewLogger builds the JSON logger every command writes with.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// OpenRepositories connects the configured database driver. The returned
// close function releases the connection and is never nil.
func OpenRepositories(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (usecase.Repositories, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		if cfg.AutoMigrate {
			if err := migration.RunMigrations(ctx, cfg.DSN); err != nil {
				return usecase.Repositories{}, nil, fmt.Errorf("migrate: %w", err)
			}
		}
		pool, err := infra.NewPool(ctx, cfg.DSN, cfg.MaxConns)
		if err != nil {
			return usecase.Repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.Info("database: postgres connected", slog.Int("max_conns", int(pool.Config().MaxConns)))
		return repository.New(pool), pool.Close, nil
	case config.DriverFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirestoreProject)
		if err != nil {
			return usecase.Repositories{}, nil, fmt.Errorf("connect firestore: %w", err)
		}
		logger.Info("database: firestore client ready", slog.String("project", cfg.FirestoreProject))
		return docstore.New(client), func() { _ = client.Close() }, nil
	default:
		logger.Warn("database: using in-memory driver, data is lost on exit")
		return memory.New(), func() {}, nil
	}
}

// OpenArchive returns the export archive for the storage driver together
// with the object key builder.
func OpenArchive(ctx context.Context, cfg config.StorageConfig) (usecase.Archive, usecase.KeyFunc, func(), error) {
	keyFor := func(userID, fileName string, at time.Time) string {
		return storage.Key(cfg.Prefix, userID, fileName, at)
	}
	switch cfg.Driver {
	case config.StorageS3:
		a, err := storage.NewS3Archive(ctx, storage.S3Options{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return a, keyFor, func() {}, nil
	case config.StorageGCS:
		a, err := storage.NewGCSArchive(ctx, cfg.Bucket)
		if err != nil {
			return nil, nil, nil, err
		}
		return a, keyFor, func() { _ = a.Close() }, nil
	default:
		return storage.Nop{}, keyFor, func() {}, nil
	}
}

// NewAssistant wires the configured completion provider.
func NewAssistant(ctx context.Context, cfg config.AIConfig) (*ai.Assistant, func(), error) {
	if cfg.Provider == config.ProviderVertex {
		v, err := ai.NewVertexCompleter(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.Model, cfg.Temperature, cfg.MaxTokens)
		if err != nil {
			return nil, nil, fmt.Errorf("vertex client: %w", err)
		}
		return ai.NewAssistant(v), func() { _ = v.Close() }, nil
	}
	c := ai.NewClient(ai.Options{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	})
	return ai.NewAssistant(c), func() {}, nil
}
