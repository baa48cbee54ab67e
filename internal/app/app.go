// Package app wires the configured adapters and runs the HTTP service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/auth"
	"resume-builder/internal/export"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

// Run serves the API until ctx is cancelled or a shutdown signal arrives.
func Run(ctx context.Context, opts ...Option) error {
	a := &application{}
	for _, opt := range opts {
		opt(a)
	}
	if a.config == nil {
		return errors.New("config is required")
	}
	cfg := a.config
	logger := a.logger
	if logger == nil {
		logger = NewLogger(os.Stdout, cfg.App.LogLevel)
		slog.SetDefault(logger)
	}

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("database_driver", cfg.Database.Driver),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("ai_provider", cfg.AI.Provider),
		slog.String("log_level", cfg.App.LogLevel.String()))

	repos, closeRepos, err := OpenRepositories(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	archive, keyFor, closeArchive, err := OpenArchive(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeArchive()

	assistant, closeAssistant, err := NewAssistant(ctx, cfg.AI)
	if err != nil {
		return err
	}
	defer closeAssistant()

	templates, err := export.LoadTemplates(cfg.Export.TemplateDir, logger)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	exporter := export.NewExporter(templates, infra.NewChromedpRasterizer(cfg.Export.ChromePath), export.RasterOptions{
		WidthPx:    cfg.Export.PageWidthPx,
		Scale:      cfg.Export.Scale,
		GraceDelay: cfg.Export.GraceDelay,
	}, logger)

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	resumes := usecase.NewResumeService(repos, logger)
	server := httpadapter.NewApp(httpadapter.Services{
		Resumes:   resumes,
		Exports:   usecase.NewExportService(resumes, exporter, archive, keyFor, logger),
		Auth:      usecase.NewAuthService(repos.Users, tokens, logger),
		Admin:     usecase.NewAdminService(repos, logger),
		Public:    usecase.NewPublicService(repos),
		Assistant: assistant,
		Users:     repos.Users,
		Tokens:    tokens,
		Ping:      repos.Ping,
	}, httpadapter.Options{
		CORSOrigins:  cfg.App.CORSOrigins,
		AIConfigured: cfg.AI.Configured(),
		BodyLimit:    cfg.App.BodyLimitMB * 1024 * 1024,
	}, logger)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := templates.Watch(gCtx); err != nil {
			logger.Warn("template watcher stopped", slog.String("error", err.Error()))
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := server.Listen(cfg.App.HTTP.Address()); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		timeout := cfg.App.HTTP.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Server stopped")
	return nil
}
