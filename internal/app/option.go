package app

import (
	"log/slog"

	"resume-builder/internal/config"
)

// Option configures Run.
type Option func(*application)

type application struct {
	config *config.Config
	logger *slog.Logger
}

func WithConfig(cfg *config.Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *application) {
		a.logger = logger
	}
}
