package progression

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

// Tracker owns achievement counters and awards.
type Tracker struct {
	Awards    ports.AwardRepository
	Inventory inventory.Service
	NewID     ports.IDGenerator
	Now       func() time.Time
}

func (t Tracker) awardedKeys(ctx context.Context, owner int64) (map[string]bool, error) {
	awards, err := t.Awards.GetAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(awards))
	for _, a := range awards {
		out[a.Key] = true
	}
	return out, nil
}

// IncrementProgress bumps the counter for key. Counters of awarded
// achievements are frozen.
func (t Tracker) IncrementProgress(ctx context.Context, p *player.Player, key string, amount int64) error {
	done, err := t.awardedKeys(ctx, p.ID)
	if err != nil {
		return err
	}
	if p.AchievementProgress == nil {
		p.AchievementProgress = map[string]int64{}
	}
	achievement.Increment(p.AchievementProgress, key, amount, done[key])
	return nil
}

// CheckAchievements awards every reached, not yet awarded achievement and
// applies its reward to p. It returns the newly awarded definitions.
func (t Tracker) CheckAchievements(ctx context.Context, p *player.Player) ([]achievement.Definition, error) {
	done, err := t.awardedKeys(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(p.AchievementProgress))
	for k := range p.AchievementProgress {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nowFn := t.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	var out []achievement.Definition
	for _, key := range keys {
		def, ok := achievement.Lookup(key)
		if !ok || done[key] || !def.Reached(p.AchievementProgress) {
			continue
		}
		award := achievement.Award{ID: t.NewID(), OwnerID: p.ID, Key: key, AwardedAt: nowFn()}
		if err := t.Awards.Add(ctx, award); err != nil {
			return nil, fmt.Errorf("add award %s: %w", key, err)
		}
		if err := t.pay(ctx, p, def.Reward); err != nil {
			return nil, fmt.Errorf("pay award %s: %w", key, err)
		}
		out = append(out, def)
	}
	return out, nil
}

func (t Tracker) pay(ctx context.Context, p *player.Player, reward map[string]int64) error {
	for name, qty := range reward {
		if name == items.CoinName {
			p.Coin += qty
			continue
		}
		if err := t.Inventory.AddByName(ctx, p.ID, name, qty); err != nil {
			return err
		}
	}
	return nil
}
