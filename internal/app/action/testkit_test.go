package action

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type stubMetrics struct {
	success  map[string]int
	conflict int
	failure  int
}

func newStubMetrics() *stubMetrics { return &stubMetrics{success: map[string]int{}} }

func (m *stubMetrics) RecordSuccess(outcome string) { m.success[outcome]++ }
func (m *stubMetrics) RecordConflict()              { m.conflict++ }
func (m *stubMetrics) RecordFailure()               { m.failure++ }

type stubWeather struct{ w player.Weather }

func (s stubWeather) Current(context.Context) (player.Weather, error) { return s.w, nil }

// zeroRand always draws the lowest value of every range.
type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

// flakyPlayers fails the first saves with a revision conflict.
type flakyPlayers struct {
	ports.PlayerRepository
	conflicts int
}

func (f *flakyPlayers) SaveWithRevision(ctx context.Context, p player.Player, expected int64) error {
	if f.conflicts > 0 {
		f.conflicts--
		return ports.ErrConflict
	}
	return f.PlayerRepository.SaveWithRevision(ctx, p, expected)
}

type testEnv struct {
	store   *memory.Store
	repos   ports.Stores
	inv     inventory.Service
	clock   *clock
	metrics *stubMetrics
	uc      UseCase
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	repos := store.Stores()
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	c := &clock{now: baseTime}
	inv := inventory.Service{Repo: repos.Inventory, NewID: newID}
	metrics := newStubMetrics()
	env := &testEnv{store: store, repos: repos, inv: inv, clock: c, metrics: metrics}
	env.uc = UseCase{
		TxManager: repos.Tx,
		Players:   repos.Players,
		Pets:      repos.Pets,
		Inventory: inv,
		Regulator: progression.Regulator{
			Players:   repos.Players,
			Pets:      repos.Pets,
			Inventory: inv,
			Tracker:   progression.Tracker{Awards: repos.Awards, Inventory: inv, NewID: newID, Now: c.Now},
		},
		Weather: stubWeather{w: player.Weather{Kind: player.WeatherClear, TempC: 18}},
		Metrics: metrics,
		Rand:    rand.New(rand.NewPCG(7, 11)),
		NewID:   newID,
		Now:     c.Now,
		Retry:   txretry.Policy{Delay: time.Millisecond},
	}
	return env
}

func (e *testEnv) seed(mut func(p *player.Player)) player.Player {
	p := player.New(100, "tester", baseTime.Add(-24*time.Hour))
	if mut != nil {
		mut(&p)
	}
	e.store.SeedPlayer(p)
	return p
}

func (e *testEnv) load() player.Player {
	p, err := e.repos.Players.Get(context.Background(), 100)
	if err != nil {
		panic(err)
	}
	return p
}
