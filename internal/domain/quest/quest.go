package quest

import (
	"strconv"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

type Quest struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Item      string    `json:"item"`
	Quantity  int64     `json:"quantity"`
	XP        float64   `json:"xp"`
	Reward    int64     `json:"reward"`
	StartedAt time.Time `json:"started_at"`
}

func (q Quest) RecordID() string   { return q.ID }
func (q Quest) RecordOwner() int64 { return q.OwnerID }

// A paid reroll raises the next fee by a step in [FeeStepMin, FeeStepMax].
const (
	FeeStepMin = 10
	FeeStepMax = 20
)

// Generate builds a delivery task for a player of the given level.
func Generate(r items.Rand, id string, owner, level int64, now time.Time) Quest {
	pool := items.Filter(func(it items.Item) bool { return it.TaskEligible })
	it := pool[r.IntN(len(pool))]
	if level < 1 {
		level = 1
	}
	qty := items.RandRange(r, 2, 10) * level
	return Quest{
		ID:        id,
		OwnerID:   owner,
		Item:      it.Name,
		Quantity:  qty,
		XP:        items.RandUniform(r, 5, 15) * float64(level),
		Reward:    it.TaskCoin.Roll(r) * qty,
		StartedAt: now,
	}
}

const GiftCooldown = 24 * time.Hour

type DailyGift struct {
	OwnerID         int64     `json:"owner_id"`
	Items           []string  `json:"items"`
	Claimed         bool      `json:"claimed"`
	NextClaimableAt time.Time `json:"next_claimable_at"`
}

func (g DailyGift) RecordID() string   { return GiftID(g.OwnerID) }
func (g DailyGift) RecordOwner() int64 { return g.OwnerID }

func GiftID(owner int64) string { return "gift-" + strconv.FormatInt(owner, 10) }

func (g DailyGift) Claimable(now time.Time) bool {
	return !g.Claimed || !now.Before(g.NextClaimableAt)
}

// NextGift rolls one to three common items and arms the next claim window.
func NextGift(r items.Rand, owner int64, now time.Time) DailyGift {
	pool := items.Filter(func(it items.Item) bool {
		return it.Rarity == items.Common && it.Name != items.CoinName
	})
	n := items.RandRange(r, 1, 3)
	picked := make([]string, 0, n)
	for i := int64(0); i < n; i++ {
		picked = append(picked, pool[r.IntN(len(pool))].Name)
	}
	return DailyGift{
		OwnerID:         owner,
		Items:           picked,
		NextClaimableAt: now.Add(GiftCooldown),
	}
}
