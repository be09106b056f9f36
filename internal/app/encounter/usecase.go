package encounter

import (
	"context"
	"fmt"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var ErrNoEncounter = fmt.Errorf("%w: nothing is waiting for an answer", ports.ErrPreconditionFailed)

type Request struct {
	PlayerID int64  `json:"-"`
	Accept   bool   `json:"accept"`
	PetName  string `json:"pet_name,omitempty"`
}

type Result struct {
	Kind     player.EncounterKind `json:"kind"`
	Accepted bool                 `json:"accepted"`
	Coin     int64                `json:"coin,omitempty"`
	Gains    []player.ItemGain    `json:"gains,omitempty"`
	Pet      *player.Pet          `json:"pet,omitempty"`
	Player   player.Player        `json:"player"`
}

// UseCase answers the pending street encounter.
type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Pets      ports.PetRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Rand      ports.Rand
	NewID     ports.IDGenerator
	Retry     txretry.Policy
}

func (u UseCase) Resolve(ctx context.Context, req Request) (Result, error) {
	var (
		out Result
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if p.Encounter == nil {
			return ErrNoEncounter
		}
		enc := *p.Encounter
		out = Result{Kind: enc.Kind, Accepted: req.Accept}

		if req.Accept {
			switch enc.Kind {
			case player.EncounterDog:
				err = u.adopt(txCtx, &p, enc, req.PetName, &out)
			case player.EncounterTrader:
				err = u.trade(txCtx, &p, enc, &out)
			case player.EncounterChest:
				err = u.open(txCtx, &p, &out)
			default:
				err = fmt.Errorf("%w: unknown encounter %q", ports.ErrInvalidOperation, enc.Kind)
			}
			if err != nil {
				return err
			}
		}

		p.Encounter = nil
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

func (u UseCase) adopt(ctx context.Context, p *player.Player, enc player.Encounter, name string, out *Result) error {
	pets, err := u.Pets.GetAll(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(pets) > 0 {
		return fmt.Errorf("%w: already has a pet", ports.ErrPreconditionFailed)
	}
	if err := u.Inventory.RemoveByName(ctx, p.ID, enc.Item, enc.Quantity); err != nil {
		return err
	}
	pet := player.NewPet(u.NewID(), p.ID, name)
	if err := u.Pets.Add(ctx, pet); err != nil {
		return err
	}
	out.Pet = &pet
	return nil
}

func (u UseCase) trade(ctx context.Context, p *player.Player, enc player.Encounter, out *Result) error {
	if p.Coin < enc.Price {
		return &inventory.InsufficientItemError{Item: items.CoinName, Required: enc.Price, Available: p.Coin}
	}
	p.Coin -= enc.Price
	if err := u.Inventory.AddByName(ctx, p.ID, enc.Item, enc.Quantity); err != nil {
		return err
	}
	out.Coin = -enc.Price
	out.Gains = append(out.Gains, player.ItemGain{Name: enc.Item, Quantity: enc.Quantity})
	return nil
}

// open rolls the chest: some coin and up to three tradeable items by rarity.
func (u UseCase) open(ctx context.Context, p *player.Player, out *Result) error {
	coin := items.RandRange(u.Rand, 5, 50)
	p.Coin += coin
	out.Coin = coin

	pool := items.Filter(func(it items.Item) bool { return it.Tradeable && it.Name != items.CoinName })
	draws := items.RandRange(u.Rand, 1, 3)
	for i := int64(0); i < draws; i++ {
		it := pool[u.Rand.IntN(len(pool))]
		qty := items.QuantityForRarity(u.Rand, it.Rarity)
		if qty <= 0 {
			continue
		}
		if err := u.Inventory.AddByName(ctx, p.ID, it.Name, qty); err != nil {
			return err
		}
		out.Gains = append(out.Gains, player.ItemGain{Name: it.Name, Quantity: qty})
	}
	return nil
}
