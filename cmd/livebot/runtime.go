package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/HamletSargsyan/livebot/internal/adapter/notify/logsink"
	"github.com/HamletSargsyan/livebot/internal/adapter/notify/retry"
	"github.com/HamletSargsyan/livebot/internal/adapter/notify/telegram"
	gormrepo "github.com/HamletSargsyan/livebot/internal/adapter/repo/gorm"
	"github.com/HamletSargsyan/livebot/internal/adapter/repo/gorm/migrations"
	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/adapter/weather/static"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/bootstrap"
	"github.com/HamletSargsyan/livebot/internal/config"

	"gorm.io/gorm"
)

// runtime is everything a subcommand needs after config is loaded.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
	app    bootstrap.App
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newRuntime(ctx context.Context) (*runtime, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	stores, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	notifier, err := buildNotifier(cfg, logger)
	if err != nil {
		return nil, err
	}
	app, err := buildApp(cfg, stores, notifier, logger)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger, app: app}, nil
}

func buildApp(cfg config.Config, stores ports.Stores, notifier ports.Notifier, logger *slog.Logger) (bootstrap.App, error) {
	weather, err := cfg.Weather()
	if err != nil {
		return bootstrap.App{}, fmt.Errorf("weather: %w", err)
	}
	return bootstrap.New(bootstrap.Deps{
		Stores:   stores,
		Notifier: notifier,
		Weather:  static.Source{Weather: weather},
		Logger:   logger,
	}), nil
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.Stores, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("using in-memory storage, state is lost on exit")
		return memory.NewStore().Stores(), nil
	}
	db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
	if err != nil {
		return ports.Stores{}, err
	}
	if err := migrate(ctx, cfg, db, logger); err != nil {
		return ports.Stores{}, err
	}
	return gormrepo.Stores(db), nil
}

func migrationsFS(cfg config.Config) fs.FS {
	if cfg.MigrationsDir != "" {
		return os.DirFS(cfg.MigrationsDir)
	}
	return migrations.FS
}

func migrate(ctx context.Context, cfg config.Config, db *gorm.DB, logger *slog.Logger) error {
	applied, err := gormrepo.ApplyMigrations(ctx, db, migrationsFS(cfg))
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	for _, v := range applied {
		logger.Info("migration applied", "version", v)
	}
	return nil
}

// buildNotifier sends through Telegram when a token is set and logs otherwise.
func buildNotifier(cfg config.Config, logger *slog.Logger) (ports.Notifier, error) {
	if cfg.TelegramToken == "" {
		logger.Warn("LIVEBOT_TELEGRAM_TOKEN is empty, notifications go to the log")
		return logsink.Notifier{Logger: logger}, nil
	}
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramTimeout)
	if err != nil {
		return nil, err
	}
	return retry.Notifier{
		Next:      telegram.Notifier{Bot: bot},
		Attempts:  cfg.NotifyAttempts,
		Permanent: telegram.IsPermanent,
		Logger:    logger,
	}, nil
}
