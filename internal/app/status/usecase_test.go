package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var now = time.Date(2026, 4, 4, 12, 0, 0, 0, time.UTC)

type statusWeather struct {
	w   player.Weather
	err error
}

func (s statusWeather) Current(context.Context) (player.Weather, error) {
	return s.w, s.err
}

func newUseCase(store *memory.Store, weather ports.WeatherSource) UseCase {
	repos := store.Stores()
	return UseCase{
		Players:   repos.Players,
		Pets:      repos.Pets,
		Inventory: repos.Inventory,
		Awards:    repos.Awards,
		Weather:   weather,
		Now:       func() time.Time { return now },
	}
}

func TestUseCase_ViewsPlayerPetInventoryAndAchievements(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Stores()
	p := player.New(1, "viewer", now)
	p.AchievementProgress = map[string]int64{"worker": 5}
	p.Action = &player.Action{ID: "a", Type: player.ActionWork, Start: now.Add(-time.Hour), End: now.Add(2 * time.Hour)}
	store.SeedPlayer(p)
	_ = repos.Pets.Add(ctx, player.NewPet("pet", 1, ""))
	_ = repos.Inventory.Add(ctx, inventory.NewCountable("i1", 1, "bread", 3))
	_ = repos.Awards.Add(ctx, achievement.Award{ID: "aw", OwnerID: 1, Key: "gamer", AwardedAt: now})

	uc := newUseCase(store, statusWeather{w: player.Weather{Kind: player.WeatherSnow, TempC: -7}})
	resp, err := uc.Execute(ctx, Request{PlayerID: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Pet == nil || resp.Pet.Name != "Doggo" {
		t.Fatalf("expected pet in view, got %+v", resp.Pet)
	}
	if len(resp.Inventory) != 1 || resp.Inventory[0].Quantity != 3 {
		t.Fatalf("unexpected inventory: %+v", resp.Inventory)
	}
	if resp.RemainingSeconds != int64((2 * time.Hour).Seconds()) {
		t.Fatalf("unexpected remaining: %d", resp.RemainingSeconds)
	}
	if resp.Weather.Kind != player.WeatherSnow {
		t.Fatalf("weather missing: %+v", resp.Weather)
	}
	for _, a := range resp.Achievements {
		switch a.Key {
		case "worker":
			if a.Percent != 50 || a.Awarded {
				t.Fatalf("unexpected worker view: %+v", a)
			}
		case "gamer":
			if !a.Awarded {
				t.Fatalf("gamer must show as awarded")
			}
		}
	}
}

func TestUseCase_RejectsMissingPlayerID(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_UnknownPlayer(t *testing.T) {
	uc := newUseCase(memory.NewStore(), nil)
	if _, err := uc.Execute(context.Background(), Request{PlayerID: 42}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUseCase_PropagatesWeatherError(t *testing.T) {
	wantErr := errors.New("weather down")
	store := memory.NewStore()
	store.SeedPlayer(player.New(1, "viewer", now))
	uc := newUseCase(store, statusWeather{err: wantErr})
	if _, err := uc.Execute(context.Background(), Request{PlayerID: 1}); !errors.Is(err, wantErr) {
		t.Fatalf("expected weather error %v, got %v", wantErr, err)
	}
}
