package progression

import (
	"context"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

func TestAchievementAwardedOnceAcrossIncrements(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.seed(player.New(1, "a", time.Unix(0, 0)))

	if err := f.reg.Tracker.IncrementProgress(ctx, p, "worker", 6); err != nil {
		t.Fatalf("increment: %v", err)
	}
	rep, err := f.reg.NormalizeAndLevelUp(ctx, p)
	if err != nil {
		t.Fatalf("regulate: %v", err)
	}
	if len(rep.Awards) != 0 {
		t.Fatalf("awarded below goal: %+v", rep.Awards)
	}

	if err := f.reg.Tracker.IncrementProgress(ctx, p, "worker", 6); err != nil {
		t.Fatalf("increment: %v", err)
	}
	rep, err = f.reg.NormalizeAndLevelUp(ctx, p)
	if err != nil {
		t.Fatalf("regulate: %v", err)
	}
	if len(rep.Awards) != 1 || rep.Awards[0].Key != "worker" {
		t.Fatalf("expected worker award, got %+v", rep.Awards)
	}
	if p.Coin != 10_000 {
		t.Fatalf("reward not paid: coin=%d", p.Coin)
	}

	if err := f.reg.Tracker.IncrementProgress(ctx, p, "worker", 6); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if p.AchievementProgress["worker"] != 12 {
		t.Fatalf("counter must freeze after award, got %d", p.AchievementProgress["worker"])
	}
	rep, err = f.reg.NormalizeAndLevelUp(ctx, p)
	if err != nil {
		t.Fatalf("regulate: %v", err)
	}
	if len(rep.Awards) != 0 || p.Coin != 10_000 {
		t.Fatalf("award granted twice: %+v coin=%d", rep.Awards, p.Coin)
	}
	awards, _ := f.repos.Awards.GetAll(ctx, 1)
	if len(awards) != 1 {
		t.Fatalf("expected one stored award, got %d", len(awards))
	}
}

func TestCheckAchievements_ItemRewardAndUnknownKeys(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	p := f.seed(player.New(1, "a", time.Unix(0, 0)))
	p.AchievementProgress = map[string]int64{"sleeper": 20, "retired-key": 99}

	got, err := f.reg.Tracker.CheckAchievements(ctx, p)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(got) != 1 || got[0].Key != "sleeper" {
		t.Fatalf("expected only sleeper, got %+v", got)
	}
	if n, _ := f.inv.Count(ctx, 1, "energy-drink"); n != 5 {
		t.Fatalf("expected 5 energy drinks, got %d", n)
	}
}
