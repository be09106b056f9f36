// Package config reads process settings from LIVEBOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/player"

	"github.com/caarlos0/env/v11"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Storage       string `env:"LIVEBOT_STORAGE"        envDefault:"postgres"`
	DatabaseDSN   string `env:"LIVEBOT_DB_DSN"`
	MigrationsDir string `env:"LIVEBOT_MIGRATIONS_DIR"`
	HTTPAddr      string `env:"LIVEBOT_HTTP_ADDR"      envDefault:":8080"`

	TelegramToken   string        `env:"LIVEBOT_TELEGRAM_TOKEN"`
	TelegramTimeout time.Duration `env:"LIVEBOT_TELEGRAM_TIMEOUT" envDefault:"10s"`
	NotifyAttempts  uint          `env:"LIVEBOT_NOTIFY_ATTEMPTS"  envDefault:"5"`

	DriftInterval  time.Duration `env:"LIVEBOT_DRIFT_INTERVAL"  envDefault:"1h"`
	NotifyInterval time.Duration `env:"LIVEBOT_NOTIFY_INTERVAL" envDefault:"5s"`
	RunOnce        bool          `env:"LIVEBOT_RUN_ONCE"`

	WeatherKind  string  `env:"LIVEBOT_WEATHER_KIND"   envDefault:"clear"`
	WeatherTempC float64 `env:"LIVEBOT_WEATHER_TEMP_C" envDefault:"15"`

	LogLevel string `env:"LIVEBOT_LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("LIVEBOT_DB_DSN is required for postgres storage"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage %q", c.Storage))
	}
	if c.DriftInterval <= 0 || c.NotifyInterval <= 0 {
		errs = append(errs, errors.New("sweep intervals must be positive"))
	}
	if c.NotifyAttempts == 0 {
		errs = append(errs, errors.New("LIVEBOT_NOTIFY_ATTEMPTS must be at least 1"))
	}
	if _, err := c.Weather(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) Weather() (player.Weather, error) {
	kind := player.WeatherKind(strings.ToLower(c.WeatherKind))
	switch kind {
	case player.WeatherClear, player.WeatherClouds, player.WeatherFog, player.WeatherDrizzle,
		player.WeatherRain, player.WeatherSnow, player.WeatherThunderstorm:
	default:
		return player.Weather{}, fmt.Errorf("unknown weather kind %q", c.WeatherKind)
	}
	return player.Weather{Kind: kind, TempC: c.WeatherTempC}, nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
