package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/notify/logsink"
	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/status"
	"github.com/HamletSargsyan/livebot/internal/config"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/player"

	"github.com/fatih/color"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "worker", "migrate", "player"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("missing subcommand %q: %v", name, err)
		}
	}
	worker, _, _ := root.Find([]string{"worker"})
	if worker.Flags().Lookup("once") == nil {
		t.Fatalf("worker must accept --once")
	}
}

func TestBuildNotifier_FallsBackToLog(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	n, err := buildNotifier(config.Config{}, logger)
	if err != nil {
		t.Fatalf("build notifier: %v", err)
	}
	if _, ok := n.(logsink.Notifier); !ok {
		t.Fatalf("expected log notifier without a token, got %T", n)
	}
}

func TestBuildApp_RejectsUnknownWeather(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stores := memory.NewStore().Stores()
	if _, err := buildApp(config.Config{WeatherKind: "hail"}, stores, logsink.Notifier{}, logger); err == nil {
		t.Fatalf("unknown weather must fail startup")
	}
	if _, err := buildApp(config.Config{WeatherKind: "clear"}, stores, logsink.Notifier{}, logger); err != nil {
		t.Fatalf("build app: %v", err)
	}
}

func TestMigrationsFS_DefaultsToEmbedded(t *testing.T) {
	fsys := migrationsFS(config.Config{})
	for _, name := range []string{"0001_init.sql", "0002_trade.sql"} {
		f, err := fsys.Open(name)
		if err != nil {
			t.Fatalf("embedded migration %s missing: %v", name, err)
		}
		_ = f.Close()
	}
}

func TestRenderPlayer(t *testing.T) {
	color.NoColor = true
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := player.New(3, "trinity", now)
	p.Vitals.Hunger = 90
	p.Start("a1", player.ActionSleep, now, time.Hour)

	var buf bytes.Buffer
	renderPlayer(&buf, status.Response{
		Player:           p,
		RemainingSeconds: 1800,
		Inventory: []inventory.Entry{
			inventory.NewCountable("e1", 3, "bread", 4),
			inventory.NewUsable("e2", 3, "umbrella", 75),
		},
	})
	out := buf.String()
	for _, want := range []string{"trinity (3)", "hunger  90", "busy: sleep, 30m0s left", "bread x4", "umbrella  75%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
