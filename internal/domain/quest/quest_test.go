package quest

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

func TestGenerate_ScalesWithLevel(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	now := time.Unix(100, 0)
	for i := 0; i < 100; i++ {
		q := Generate(r, "q", 1, 3, now)
		it, err := items.Lookup(q.Item)
		if err != nil || !it.TaskEligible {
			t.Fatalf("quest item must be task eligible: %q", q.Item)
		}
		if q.Quantity < 6 || q.Quantity > 30 {
			t.Fatalf("quantity out of range for level 3: %d", q.Quantity)
		}
		if q.Reward < it.TaskCoin.Min*q.Quantity || q.Reward > it.TaskCoin.Max*q.Quantity {
			t.Fatalf("reward out of range: %d", q.Reward)
		}
		if q.XP < 15 || q.XP > 45 {
			t.Fatalf("xp out of range: %v", q.XP)
		}
	}
}

func TestDailyGift_ClaimWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	g := NextGift(rand.New(rand.NewPCG(1, 2)), 7, now)
	if n := len(g.Items); n < 1 || n > 3 {
		t.Fatalf("expected 1..3 items, got %d", n)
	}
	if !g.Claimable(now) {
		t.Fatalf("fresh gift must be claimable")
	}
	g.Claimed = true
	if g.Claimable(now.Add(23 * time.Hour)) {
		t.Fatalf("claimed gift must wait for the window")
	}
	if !g.Claimable(now.Add(GiftCooldown)) {
		t.Fatalf("gift must re-open after the cooldown")
	}
}
