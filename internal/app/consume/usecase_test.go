package consume

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var now = time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC)

func setup(mut func(p *player.Player)) (UseCase, *memory.Store, inventory.Service) {
	store := memory.NewStore()
	repos := store.Stores()
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	inv := inventory.Service{Repo: repos.Inventory, NewID: newID}
	p := player.New(5, "eater", now.Add(-time.Hour))
	if mut != nil {
		mut(&p)
	}
	store.SeedPlayer(p)
	return UseCase{
		TxManager: repos.Tx,
		Players:   repos.Players,
		Inventory: inv,
		Regulator: progression.Regulator{
			Players:   repos.Players,
			Pets:      repos.Pets,
			Inventory: inv,
			Tracker:   progression.Tracker{Awards: repos.Awards, Inventory: inv, NewID: newID},
		},
		Rand:  rand.New(rand.NewPCG(5, 6)),
		Now:   func() time.Time { return now },
		Retry: txretry.Policy{Delay: time.Millisecond},
	}, store, inv
}

func TestUse_EffectsByTag(t *testing.T) {
	cases := []struct {
		item  string
		start player.Vitals
		check func(p player.Player) bool
	}{
		{"bread", player.Vitals{Health: 100, Mood: 50, Hunger: 60}, func(p player.Player) bool { return p.Vitals.Hunger == 50 }},
		{"sandwich", player.Vitals{Health: 100, Mood: 50, Hunger: 10}, func(p player.Player) bool { return p.Vitals.Hunger == 0 }},
		{"tea", player.Vitals{Health: 100, Mood: 50, Fatigue: 30}, func(p player.Player) bool { return p.Vitals.Fatigue == 20 }},
		{"medkit", player.Vitals{Health: 50, Mood: 50}, func(p player.Player) bool { return p.Vitals.Health == 80 }},
		{"moonshine", player.Vitals{Health: 100, Mood: 50, Fatigue: 70}, func(p player.Player) bool {
			return p.Vitals.Fatigue == 0 && p.Vitals.Health == 85
		}},
		{"clover", player.Vitals{Health: 100}, func(p player.Player) bool { return p.Luck == 2 }},
	}
	for _, tc := range cases {
		t.Run(tc.item, func(t *testing.T) {
			ctx := context.Background()
			uc, _, inv := setup(func(p *player.Player) { p.Vitals = tc.start })
			_ = inv.AddByName(ctx, 5, tc.item, 2)

			res, err := uc.Use(ctx, 5, tc.item)
			if err != nil {
				t.Fatalf("use %s: %v", tc.item, err)
			}
			if !tc.check(res.Player) {
				t.Fatalf("effect of %s not applied: %+v luck=%d", tc.item, res.Player.Vitals, res.Player.Luck)
			}
			if n, _ := inv.Count(ctx, 5, tc.item); n != 1 {
				t.Fatalf("expected one unit consumed, %d left", n)
			}
			if res.Player.Revision != 1 {
				t.Fatalf("player not persisted through the regulator")
			}
		})
	}
}

func TestUse_BoostLevelsUp(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(nil)
	_ = inv.AddByName(ctx, 5, "boost", 1)

	res, err := uc.Use(ctx, 5, "boost")
	if err != nil {
		t.Fatalf("use boost: %v", err)
	}
	if res.Amount < 100 || res.Amount > 150 {
		t.Fatalf("boost xp out of range: %v", res.Amount)
	}
	if res.Player.Progress.Level < 2 {
		t.Fatalf("boost must level up a new player: %+v", res.Player.Progress)
	}
	if n, _ := inv.Count(ctx, 5, items.RewardBox); n != int64(res.Player.Progress.Level-1) {
		t.Fatalf("expected one box per level, got %d", n)
	}
}

func TestUse_OpenBox(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(nil)
	_ = inv.AddByName(ctx, 5, items.RewardBox, 1)

	res, err := uc.Use(ctx, 5, items.RewardBox)
	if err != nil {
		t.Fatalf("open box: %v", err)
	}
	for _, g := range res.Gains {
		if n, _ := inv.Count(ctx, 5, g.Name); n < g.Quantity {
			t.Fatalf("box content %s not stored", g.Name)
		}
	}
	if res.Player.Coin != res.Coin {
		t.Fatalf("box coin not credited: %d vs %d", res.Player.Coin, res.Coin)
	}
}

func TestUse_BicycleShortensWalk(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(func(p *player.Player) {
		p.Action = &player.Action{ID: "walk", Type: player.ActionStreet, Start: now.Add(-10 * time.Minute), End: now.Add(50 * time.Minute)}
	})
	_ = inv.AddByName(ctx, 5, "bike", 1)

	res, err := uc.Use(ctx, 5, "bicycle")
	if err != nil {
		t.Fatalf("use bicycle: %v", err)
	}
	left := res.Player.Action.End.Sub(now)
	if left < 5*time.Minute || left > 40*time.Minute {
		t.Fatalf("walk not shortened by 10-45 minutes: %s left", left)
	}
}

func TestUse_BicycleNeedsWalk(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(nil)
	_ = inv.AddByName(ctx, 5, "bicycle", 1)

	if _, err := uc.Use(ctx, 5, "bicycle"); !errors.Is(err, ports.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure, got %v", err)
	}
	if n, _ := inv.Count(ctx, 5, "bicycle"); n != 1 {
		t.Fatalf("failed use consumed the item")
	}
}

func TestUse_Rejections(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(nil)
	_ = inv.AddByName(ctx, 5, "umbrella", 1)
	_ = inv.AddByName(ctx, 5, "pill", 1)

	cases := []struct {
		item string
		want error
	}{
		{"umbrella", ports.ErrInvalidOperation},
		{"water", ports.ErrInvalidOperation},
		{"pill", ports.ErrInvalidOperation},
		{"bread", ports.ErrPreconditionFailed},
		{"unicorn", ports.ErrNotFound},
	}
	for _, tc := range cases {
		if _, err := uc.Use(ctx, 5, tc.item); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.item, tc.want, err)
		}
	}
}
