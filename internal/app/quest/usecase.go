package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
	"github.com/HamletSargsyan/livebot/internal/domain/quest"
)

var ErrNoQuest = fmt.Errorf("%w: no active quest", ports.ErrPreconditionFailed)

// GiftCooldownError rejects a daily gift claimed too early.
type GiftCooldownError struct {
	Remaining time.Duration
}

func (e *GiftCooldownError) Error() string {
	return fmt.Sprintf("next gift in %s", e.Remaining.Round(time.Minute))
}

func (e *GiftCooldownError) Unwrap() error { return ports.ErrPreconditionFailed }

type CompleteResult struct {
	Quest  quest.Quest   `json:"quest"`
	Player player.Player `json:"player"`
}

type GenerateResult struct {
	Quest quest.Quest `json:"quest"`
	// Fee is the coin charged for this reroll.
	Fee    int64         `json:"fee"`
	Player player.Player `json:"player"`
}

type GiftResult struct {
	Gains  []player.ItemGain `json:"gains"`
	Next   time.Time         `json:"next_claimable_at"`
	Player player.Player     `json:"player"`
}

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Quests    ports.QuestRepository
	Gifts     ports.GiftRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Rand      ports.Rand
	NewID     ports.IDGenerator
	Now       func() time.Time
	Retry     txretry.Policy
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) active(ctx context.Context, owner int64) (quest.Quest, error) {
	qs, err := u.Quests.GetAll(ctx, owner)
	if err != nil {
		return quest.Quest{}, err
	}
	if len(qs) == 0 {
		return quest.Quest{}, ErrNoQuest
	}
	return qs[0], nil
}

// Current returns the active quest, generating one when there is none.
func (u UseCase) Current(ctx context.Context, playerID int64) (quest.Quest, error) {
	var out quest.Quest
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		q, err := u.active(txCtx, playerID)
		if err == nil {
			out = q
			return nil
		}
		if !errors.Is(err, ErrNoQuest) {
			return err
		}
		p, err := u.Players.Get(txCtx, playerID)
		if err != nil {
			return err
		}
		out, err = u.generate(txCtx, p)
		return err
	})
	return out, err
}

// Generate replaces any active quest with a fresh one for the current
// reroll fee. Every paid reroll makes the next one dearer.
func (u UseCase) Generate(ctx context.Context, playerID int64) (GenerateResult, error) {
	var (
		out GenerateResult
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, playerID)
		if err != nil {
			return err
		}
		fee := p.QuestFeeDue()
		if fee > p.Coin {
			return &inventory.InsufficientItemError{Item: items.CoinName, Required: fee, Available: p.Coin}
		}
		p.Coin -= fee
		p.QuestFee = fee + items.RandRange(u.Rand, quest.FeeStepMin, quest.FeeStepMax)
		q, err := u.generate(txCtx, p)
		if err != nil {
			return err
		}
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = GenerateResult{Quest: q, Fee: fee, Player: p}
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

func (u UseCase) generate(ctx context.Context, p player.Player) (quest.Quest, error) {
	old, err := u.Quests.GetAll(ctx, p.ID)
	if err != nil {
		return quest.Quest{}, err
	}
	for _, q := range old {
		if err := u.Quests.Delete(ctx, q.ID); err != nil {
			return quest.Quest{}, err
		}
	}
	q := quest.Generate(u.Rand, u.NewID(), p.ID, p.Progress.Level, u.now())
	if err := u.Quests.Add(ctx, q); err != nil {
		return quest.Quest{}, err
	}
	return q, nil
}

// Complete hands in the quest items and pays the reward.
func (u UseCase) Complete(ctx context.Context, playerID int64) (CompleteResult, error) {
	var (
		out CompleteResult
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, playerID)
		if err != nil {
			return err
		}
		q, err := u.active(txCtx, p.ID)
		if err != nil {
			return err
		}
		if err := u.Inventory.RemoveByName(txCtx, p.ID, q.Item, q.Quantity); err != nil {
			return err
		}
		p.Coin += q.Reward
		p.Progress.XP += q.XP
		if err := u.Quests.Delete(txCtx, q.ID); err != nil {
			return err
		}
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = CompleteResult{Quest: q, Player: p}
		return nil
	})
	if err != nil {
		return CompleteResult{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

// ClaimGift grants the waiting daily gift and arms the next one.
func (u UseCase) ClaimGift(ctx context.Context, playerID int64) (GiftResult, error) {
	var (
		out GiftResult
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		out = GiftResult{}
		p, err := u.Players.Get(txCtx, playerID)
		if err != nil {
			return err
		}
		now := u.now()
		g, err := u.Gifts.Get(txCtx, quest.GiftID(p.ID))
		fresh := errors.Is(err, ports.ErrNotFound)
		switch {
		case fresh:
			g = quest.NextGift(u.Rand, p.ID, now)
		case err != nil:
			return err
		case !g.Claimable(now):
			return &GiftCooldownError{Remaining: g.NextClaimableAt.Sub(now)}
		}

		for _, name := range g.Items {
			qty := items.QuantityForRarity(u.Rand, items.MustLookup(name).Rarity)
			if err := u.Inventory.AddByName(txCtx, p.ID, name, qty); err != nil {
				return err
			}
			out.Gains = append(out.Gains, player.ItemGain{Name: name, Quantity: qty})
		}

		next := quest.NextGift(u.Rand, p.ID, now)
		next.Claimed = true
		if fresh {
			err = u.Gifts.Add(txCtx, next)
		} else {
			err = u.Gifts.Update(txCtx, next)
		}
		if err != nil {
			return err
		}
		// the revision save loses to a concurrent claim on the same player
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out.Next = next.NextClaimableAt
		out.Player = p
		return nil
	})
	if err != nil {
		return GiftResult{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}
