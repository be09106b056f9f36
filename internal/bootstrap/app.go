// Package bootstrap wires use cases, sweeps and the HTTP handler over one
// set of repositories.
package bootstrap

import (
	"log/slog"
	"time"

	httpadapter "github.com/HamletSargsyan/livebot/internal/adapter/http"
	metricsinmem "github.com/HamletSargsyan/livebot/internal/adapter/metrics/inmemory"
	"github.com/HamletSargsyan/livebot/internal/app/account"
	"github.com/HamletSargsyan/livebot/internal/app/action"
	"github.com/HamletSargsyan/livebot/internal/app/casino"
	"github.com/HamletSargsyan/livebot/internal/app/consume"
	"github.com/HamletSargsyan/livebot/internal/app/encounter"
	"github.com/HamletSargsyan/livebot/internal/app/exchanger"
	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/market"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/quest"
	"github.com/HamletSargsyan/livebot/internal/app/status"
	"github.com/HamletSargsyan/livebot/internal/app/sweep"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/app/workshop"
	"github.com/HamletSargsyan/livebot/internal/platform/random"
)

type Deps struct {
	Stores   ports.Stores
	Notifier ports.Notifier
	Weather  ports.WeatherSource
	Metrics  *metricsinmem.Recorder
	Rand     ports.Rand
	NewID    ports.IDGenerator
	Now      func() time.Time
	Logger   *slog.Logger
	// Retry governs every transaction closing with a revision save.
	Retry txretry.Policy
}

type App struct {
	Handler       httpadapter.Handler
	Status        status.UseCase
	Drift         sweep.Drift
	Notifications sweep.Notifications
}

func New(d Deps) App {
	if d.Rand == nil {
		d.Rand = random.Global()
	}
	if d.NewID == nil {
		d.NewID = random.NewID
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Metrics == nil {
		d.Metrics = metricsinmem.NewRecorder()
	}

	if d.Retry.Logger == nil {
		d.Retry.Logger = d.Logger
	}

	s := d.Stores
	inv := inventory.Service{Repo: s.Inventory, NewID: d.NewID}
	tracker := progression.Tracker{Awards: s.Awards, Inventory: inv, NewID: d.NewID, Now: d.Now}
	reg := progression.Regulator{
		Players:   s.Players,
		Pets:      s.Pets,
		Inventory: inv,
		Tracker:   tracker,
		Notifier:  d.Notifier,
		Logger:    d.Logger,
	}
	st := status.UseCase{
		Players:   s.Players,
		Pets:      s.Pets,
		Inventory: s.Inventory,
		Awards:    s.Awards,
		Weather:   d.Weather,
		Now:       d.Now,
	}

	return App{
		Handler: httpadapter.Handler{
			RegisterUC: account.RegisterUseCase{Players: s.Players, Now: d.Now, Logger: d.Logger},
			ActionUC: action.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Pets:      s.Pets,
				Inventory: inv,
				Regulator: reg,
				Weather:   d.Weather,
				Metrics:   d.Metrics,
				Rand:      d.Rand,
				NewID:     d.NewID,
				Now:       d.Now,
				Logger:    d.Logger,
				Retry:     d.Retry,
			},
			WorkshopUC: workshop.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Inventory: inv,
				Regulator: reg,
				Rand:      d.Rand,
				Retry:     d.Retry,
			},
			ConsumeUC: consume.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Inventory: inv,
				Regulator: reg,
				Rand:      d.Rand,
				Now:       d.Now,
				Retry:     d.Retry,
			},
			EncounterUC: encounter.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Pets:      s.Pets,
				Inventory: inv,
				Regulator: reg,
				Rand:      d.Rand,
				NewID:     d.NewID,
				Retry:     d.Retry,
			},
			QuestUC: quest.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Quests:    s.Quests,
				Gifts:     s.Gifts,
				Inventory: inv,
				Regulator: reg,
				Rand:      d.Rand,
				NewID:     d.NewID,
				Now:       d.Now,
				Retry:     d.Retry,
			},
			ExchangerUC: exchanger.UseCase{
				TxManager:  s.Tx,
				Players:    s.Players,
				Exchangers: s.Exchangers,
				Inventory:  inv,
				Regulator:  reg,
				Rand:       d.Rand,
				Now:        d.Now,
				Retry:      d.Retry,
			},
			MarketUC: market.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Listings:  s.Market,
				Inventory: inv,
				Regulator: reg,
				Notifier:  d.Notifier,
				NewID:     d.NewID,
				Now:       d.Now,
				Logger:    d.Logger,
				Retry:     d.Retry,
			},
			CasinoUC: casino.UseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Inventory: inv,
				Regulator: reg,
				Rand:      d.Rand,
				Retry:     d.Retry,
			},
			UpgradeUC: account.UpgradeUseCase{
				TxManager: s.Tx,
				Players:   s.Players,
				Regulator: reg,
				Retry:     d.Retry,
			},
			StatusUC: st,
			KPI:      d.Metrics,
		},
		Status: st,
		Drift: sweep.Drift{
			TxManager: s.Tx,
			Players:   s.Players,
			Regulator: reg,
			Rand:      d.Rand,
			Now:       d.Now,
			Logger:    d.Logger,
			Retry:     d.Retry,
		},
		Notifications: sweep.Notifications{
			Players:    s.Players,
			Watermarks: s.Watermarks,
			Notifier:   d.Notifier,
			Now:        d.Now,
			Logger:     d.Logger,
		},
	}
}
