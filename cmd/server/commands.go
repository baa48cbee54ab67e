package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"resume-builder/internal/adapter/mcp"
	"resume-builder/internal/app"
	"resume-builder/internal/auth"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	pkgconfig "resume-builder/pkg/config"
)

var version = "dev"

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.NewDefaultConfig()
	if err := pkgconfig.Load(cmd.Root().String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := app.Run(ctx, app.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate: driver %q has no schema", cfg.Database.Driver)
	}
	slog.SetDefault(app.NewLogger(os.Stdout, cfg.App.LogLevel))
	return migration.RunMigrations(ctx, cfg.Database.DSN)
}

// withRepos opens the configured repositories for a one-shot command.
func withRepos(ctx context.Context, cmd *cli.Command, fn func(*config.Config, usecase.Repositories, *slog.Logger) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := app.NewLogger(os.Stdout, cfg.App.LogLevel)
	repos, closeRepos, err := app.OpenRepositories(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeRepos()
	return fn(cfg, repos, logger)
}

func seed(ctx context.Context, cmd *cli.Command) error {
	return withRepos(ctx, cmd, func(_ *config.Config, repos usecase.Repositories, logger *slog.Logger) error {
		res, err := migration.Seed(ctx, repos, time.Now().UTC())
		if err != nil {
			return err
		}
		logger.Info("seed complete", slog.Int("templates", res.Templates), slog.Int("blogs", res.Blogs))
		return nil
	})
}

func promoteAdmin(ctx context.Context, cmd *cli.Command) error {
	return withRepos(ctx, cmd, func(cfg *config.Config, repos usecase.Repositories, logger *slog.Logger) error {
		svc := usecase.NewAuthService(repos.Users, auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), logger)
		u, err := svc.PromoteAdmin(ctx, cmd.String("email"))
		if err != nil {
			return err
		}
		fmt.Printf("%s is now an admin\n", u.Email)
		return nil
	})
}

func createAdmin(ctx context.Context, cmd *cli.Command) error {
	password, err := promptPassword(os.Stdout)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	return withRepos(ctx, cmd, func(cfg *config.Config, repos usecase.Repositories, logger *slog.Logger) error {
		svc := usecase.NewAuthService(repos.Users, auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), logger)
		u, err := svc.CreateAdmin(ctx, cmd.String("name"), cmd.String("email"), password)
		if err != nil {
			return err
		}
		fmt.Printf("admin %s created\n", u.Email)
		return nil
	})
}

// serveMCP logs to stderr; stdout carries the protocol.
func serveMCP(_ context.Context, _ *cli.Command) error {
	slog.SetDefault(app.NewLogger(os.Stderr, slog.LevelWarn))
	return mcp.New(version).ServeStdio()
}

var errPasswordMismatch = errors.New("passwords do not match")

// promptPassword asks twice and returns the password once both entries agree.
func promptPassword(w io.Writer) (string, error) {
	first, err := readLine(w, "Enter password: ")
	if err != nil {
		return "", err
	}
	second, err := readLine(w, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errPasswordMismatch
	}
	return first, nil
}
