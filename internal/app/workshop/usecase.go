package workshop

import (
	"context"
	"errors"
	"fmt"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	domaininv "github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var ErrInvalidRequest = fmt.Errorf("%w: invalid workshop request", ports.ErrInvalidOperation)

type CraftRequest struct {
	PlayerID int64  `json:"-"`
	Item     string `json:"item"`
	Times    int64  `json:"times"`
}

type CraftResponse struct {
	inventory.CraftResult
	Player player.Player `json:"player"`
}

// TransferRequest moves Quantity of Item from one player to another. For
// usable items EntryID picks the unit; empty means the first one held.
type TransferRequest struct {
	From     int64  `json:"-"`
	To       int64  `json:"to"`
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
	EntryID  string `json:"entry_id,omitempty"`
}

type TransferResponse struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
	To       int64  `json:"to"`
}

// UseCase covers crafting and giving items away.
type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Rand      ports.Rand
	Retry     txretry.Policy
}

func (u UseCase) Crafts(ctx context.Context, playerID int64) ([]inventory.CraftOption, error) {
	if _, err := u.Players.Get(ctx, playerID); err != nil {
		return nil, err
	}
	return u.Inventory.AvailableCrafts(ctx, playerID)
}

func (u UseCase) Craft(ctx context.Context, req CraftRequest) (CraftResponse, error) {
	if req.Item == "" {
		return CraftResponse{}, ErrInvalidRequest
	}
	if req.Times == 0 {
		req.Times = 1
	}
	var (
		out CraftResponse
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		res, err := u.Inventory.Craft(txCtx, u.Rand, &p, req.Item, req.Times)
		if err != nil {
			return err
		}
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = CraftResponse{CraftResult: res, Player: p}
		return nil
	})
	if err != nil {
		return CraftResponse{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

func (u UseCase) Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error) {
	if req.Item == "" || req.To <= 0 || req.From == req.To {
		return TransferResponse{}, ErrInvalidRequest
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return TransferResponse{}, ErrInvalidRequest
	}
	it, err := items.Lookup(req.Item)
	if err != nil {
		return TransferResponse{}, fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	if it.Kind == items.Usable {
		req.Quantity = 1
	}

	var reps []progression.Report
	err = u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		reps = reps[:0]
		from, err := u.Players.Get(txCtx, req.From)
		if err != nil {
			return err
		}
		to, err := u.Players.Get(txCtx, req.To)
		if err != nil {
			return err
		}
		if it.Name == items.CoinName {
			if from.Coin < req.Quantity {
				return &inventory.InsufficientItemError{Item: items.CoinName, Required: req.Quantity, Available: from.Coin}
			}
			from.Coin -= req.Quantity
			to.Coin += req.Quantity
		} else {
			entry, err := u.pick(txCtx, from.ID, it, req.EntryID)
			if err != nil {
				return err
			}
			if err := u.Inventory.Transfer(txCtx, entry, to.ID, req.Quantity); err != nil {
				return err
			}
		}
		// both revisions move so a transfer racing this one rolls back
		return u.settle(txCtx, &reps, &from, &to)
	})
	if err != nil {
		return TransferResponse{}, err
	}
	for _, rep := range reps {
		u.Regulator.Announce(ctx, rep)
	}
	return TransferResponse{Item: it.Name, Quantity: req.Quantity, To: req.To}, nil
}

func (u UseCase) settle(ctx context.Context, reps *[]progression.Report, players ...*player.Player) error {
	for _, p := range players {
		rep, err := u.Regulator.NormalizeAndLevelUp(ctx, p)
		if err != nil {
			return err
		}
		*reps = append(*reps, rep)
	}
	return nil
}

func (u UseCase) pick(ctx context.Context, owner int64, it items.Item, entryID string) (domaininv.Entry, error) {
	if entryID == "" {
		e, err := u.Inventory.FindOne(ctx, owner, it.Name)
		if errors.Is(err, ports.ErrNotFound) {
			return domaininv.Entry{}, &inventory.InsufficientItemError{Item: it.Name, Required: 1, Available: 0}
		}
		return e, err
	}
	held, err := u.Inventory.Find(ctx, owner, it.Name, 0)
	if err != nil {
		return domaininv.Entry{}, err
	}
	for _, e := range held {
		if e.ID == entryID {
			return e, nil
		}
	}
	return domaininv.Entry{}, fmt.Errorf("%w: %s unit %s", ports.ErrNotFound, it.Name, entryID)
}
