package consume

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
)

var (
	ErrNotWalking = fmt.Errorf("%w: only a walk in progress can be shortened", ports.ErrPreconditionFailed)
	ErrNoEffect   = fmt.Errorf("%w: item has no effect yet", ports.ErrInvalidOperation)
)

type Result struct {
	Item   string            `json:"item"`
	Effect items.EffectKind  `json:"effect"`
	Amount float64           `json:"amount"`
	Coin   int64             `json:"coin,omitempty"`
	Gains  []player.ItemGain `json:"gains,omitempty"`
	Player player.Player     `json:"player"`
}

// UseCase consumes one unit of an item and applies its effect.
type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Rand      ports.Rand
	Now       func() time.Time
	Retry     txretry.Policy
}

func (u UseCase) Use(ctx context.Context, playerID int64, name string) (Result, error) {
	it, err := items.Lookup(name)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	if !it.Consumable || it.Kind == items.Usable {
		return Result{}, &inventory.InvalidItemError{Item: it.Name, Reason: "cannot be used"}
	}
	if it.Effect.Kind == items.EffectNotImplemented || it.Effect.Kind == items.EffectNone {
		return Result{}, ErrNoEffect
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var (
		out Result
		rep progression.Report
	)
	err = u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, playerID)
		if err != nil {
			return err
		}
		entry, err := u.Inventory.FindOne(txCtx, p.ID, it.Name)
		if errors.Is(err, ports.ErrNotFound) {
			return &inventory.InsufficientItemError{Item: it.Name, Required: 1, Available: 0}
		}
		if err != nil {
			return err
		}

		out = Result{Item: it.Name, Effect: it.Effect.Kind}
		if err := u.apply(txCtx, &p, it.Effect, nowFn(), &out); err != nil {
			return err
		}
		if err := u.Inventory.Remove(txCtx, entry, 1); err != nil {
			return err
		}
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out.Player = p
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

func (u UseCase) apply(ctx context.Context, p *player.Player, eff items.Effect, now time.Time, out *Result) error {
	switch eff.Kind {
	case items.EffectHungerRestore:
		p.Vitals.Hunger -= eff.Amount
		out.Amount = float64(eff.Amount)
	case items.EffectFatigueRestore:
		p.Vitals.Fatigue -= eff.Amount
		out.Amount = float64(eff.Amount)
	case items.EffectHealthRestore:
		p.Vitals.Health += eff.Amount
		out.Amount = float64(eff.Amount)
	case items.EffectLuckBoost:
		p.Luck += eff.Amount
		out.Amount = float64(eff.Amount)
	case items.EffectXPBoost:
		out.Amount = items.RandUniform(u.Rand, 100, 150)
		p.Progress.XP += out.Amount
	case items.EffectFatigueResetHealthCost:
		p.Vitals.Fatigue = 0
		p.Vitals.Health -= eff.Amount
		out.Amount = float64(eff.Amount)
	case items.EffectActionTimeReduction:
		if p.Action == nil || p.Action.Type != player.ActionStreet || p.Action.Done(now) {
			return ErrNotWalking
		}
		d := time.Duration(items.RandRange(u.Rand, 10, 45)) * time.Minute
		p.Shorten(d, now)
		out.Amount = d.Minutes()
	case items.EffectRandomBoxOpen:
		return u.openBox(ctx, p, out)
	default:
		return ErrNoEffect
	}
	return nil
}

// openBox draws one to three catalog items and grants each by its rarity.
func (u UseCase) openBox(ctx context.Context, p *player.Player, out *Result) error {
	pool := items.Filter(func(it items.Item) bool { return it.Name != items.RewardBox })
	draws := items.RandRange(u.Rand, 1, 3)
	for i := int64(0); i < draws; i++ {
		it := pool[u.Rand.IntN(len(pool))]
		qty := items.QuantityForRarity(u.Rand, it.Rarity)
		if qty <= 0 {
			continue
		}
		if it.Name == items.CoinName {
			p.Coin += qty
			out.Coin += qty
			continue
		}
		if err := u.Inventory.AddByName(ctx, p.ID, it.Name, qty); err != nil {
			return err
		}
		out.Gains = append(out.Gains, player.ItemGain{Name: it.Name, Quantity: qty})
	}
	return nil
}
