package cmd

import (
	"context"
	"fmt"

	"fixresx/core/config"
	"fixresx/core/database"
	"fixresx/core/license"
	"fixresx/core/logger"
	"fixresx/core/storage"
	"fixresx/feature/fixresx"

	"go.uber.org/zap"
)

// bootstrap loads and validates the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openHistory connects to the run history database, or returns nil when it
// is disabled.
func openHistory(ctx context.Context, cfg *config.Config) (*fixresx.History, error) {
	if !cfg.Database.Enabled {
		return nil, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	history := fixresx.NewHistory(db)
	if err := history.Migrate(ctx); err != nil {
		return nil, err
	}
	return history, nil
}

// openArchive creates the storage client, or returns nil when archiving is disabled.
func openArchive(cfg *config.Config) (*fixresx.Archive, error) {
	if !cfg.Storage.Enabled {
		return nil, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return fixresx.NewArchive(client, cfg.Storage), nil
}

// newService wires the fix service from the configuration. Optional backends
// that cannot be reached are reported and left out.
func newService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*fixresx.Service, error) {
	lic, err := license.Load(cfg.Paths.LicensePath)
	if err != nil {
		return nil, err
	}

	archive, err := openArchive(cfg)
	if err != nil {
		l.Warn("Run archive disabled", zap.Error(err))
	}

	history, err := openHistory(ctx, cfg)
	if err != nil {
		l.Warn("Run history disabled", zap.Error(err))
	}

	return fixresx.NewService(fixresx.ServiceConfig{
		Paths:     cfg.Paths,
		Reconcile: cfg.Reconcile,
		License:   lic,
	}, l, archive, history), nil
}
