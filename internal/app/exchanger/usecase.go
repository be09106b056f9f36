// Package exchanger sells items to the player's personal daily buyer.
package exchanger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
	"github.com/HamletSargsyan/livebot/internal/domain/trade"
)

var (
	ErrInvalidRequest = fmt.Errorf("%w: invalid exchange request", ports.ErrInvalidOperation)
	// ErrOfferChanged rejects a sale quoted against an offer that has since rotated.
	ErrOfferChanged = fmt.Errorf("%w: exchanger offer changed", ports.ErrPreconditionFailed)
)

// LevelRequiredError rejects a player below the exchanger's level.
type LevelRequiredError struct {
	Required int64
	Level    int64
}

func (e *LevelRequiredError) Error() string {
	return fmt.Sprintf("exchanger opens at level %d, player is level %d", e.Required, e.Level)
}

func (e *LevelRequiredError) Unwrap() error { return ports.ErrPreconditionFailed }

// SellRequest sells Quantity units of the current offer. A non-empty Item
// must match the offered item.
type SellRequest struct {
	PlayerID int64  `json:"-"`
	Item     string `json:"item,omitempty"`
	Quantity int64  `json:"quantity"`
}

type SellResult struct {
	Offer    trade.Exchanger `json:"offer"`
	Quantity int64           `json:"quantity"`
	Earned   int64           `json:"earned"`
	Player   player.Player   `json:"player"`
}

type UseCase struct {
	TxManager  ports.TxManager
	Players    ports.PlayerRepository
	Exchangers ports.ExchangerRepository
	Inventory  inventory.Service
	Regulator  progression.Regulator
	Rand       ports.Rand
	Now        func() time.Time
	Retry      txretry.Policy
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

// Current returns the player's offer, rolling a new one when there is none
// or the old one expired.
func (u UseCase) Current(ctx context.Context, playerID int64) (trade.Exchanger, error) {
	var out trade.Exchanger
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, playerID)
		if err != nil {
			return err
		}
		out, err = u.offer(txCtx, p)
		return err
	})
	return out, err
}

func (u UseCase) offer(ctx context.Context, p player.Player) (trade.Exchanger, error) {
	if p.Progress.Level < trade.ExchangerMinLevel {
		return trade.Exchanger{}, &LevelRequiredError{Required: trade.ExchangerMinLevel, Level: p.Progress.Level}
	}
	now := u.now()
	ex, err := u.Exchangers.Get(ctx, trade.ExchangerID(p.ID))
	switch {
	case errors.Is(err, ports.ErrNotFound):
		ex = trade.NewExchanger(u.Rand, p.ID, now)
		return ex, u.Exchangers.Add(ctx, ex)
	case err != nil:
		return trade.Exchanger{}, err
	case ex.Expired(now):
		ex = trade.NewExchanger(u.Rand, p.ID, now)
		return ex, u.Exchangers.Update(ctx, ex)
	}
	return ex, nil
}

// Sell hands Quantity units of the offered item to the exchanger for
// Quantity times its unit price.
func (u UseCase) Sell(ctx context.Context, req SellRequest) (SellResult, error) {
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return SellResult{}, ErrInvalidRequest
	}
	var (
		out SellResult
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		ex, err := u.offer(txCtx, p)
		if err != nil {
			return err
		}
		if req.Item != "" && req.Item != ex.Item {
			return fmt.Errorf("%w: now buying %s", ErrOfferChanged, ex.Item)
		}
		if err := u.Inventory.RemoveByName(txCtx, p.ID, ex.Item, req.Quantity); err != nil {
			return err
		}
		earned := req.Quantity * ex.Price
		p.Coin += earned
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = SellResult{Offer: ex, Quantity: req.Quantity, Earned: earned, Player: p}
		return nil
	})
	if err != nil {
		return SellResult{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}
