// Package casino runs the ticket-gated coin flip.
package casino

import (
	"context"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

const (
	TicketName = "ticket"

	// a roll in [0, 10] above loseMax wins
	loseMax = 5
	// a win pays this many times the stake
	winFactor = 2
)

type Request struct {
	PlayerID int64 `json:"-"`
	Stake    int64 `json:"stake"`
}

type Result struct {
	Won   bool  `json:"won"`
	Stake int64 `json:"stake"`
	// Delta is the signed change of the coin balance.
	Delta  int64         `json:"delta"`
	Player player.Player `json:"player"`
}

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Rand      ports.Rand
	Retry     txretry.Policy
}

// Play spends one ticket on a bet of req.Stake coin. A non-positive stake
// counts as one coin.
func (u UseCase) Play(ctx context.Context, req Request) (Result, error) {
	stake := req.Stake
	if stake <= 0 {
		stake = 1
	}
	var (
		out Result
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if err := u.Inventory.RemoveByName(txCtx, p.ID, TicketName, 1); err != nil {
			return err
		}
		if p.Coin <= 0 || stake > p.Coin {
			return &inventory.InsufficientItemError{Item: items.CoinName, Required: stake, Available: p.Coin}
		}
		out = Result{Stake: stake}
		if items.RandRange(u.Rand, 0, 10) <= loseMax {
			out.Delta = -stake
			p.CasinoLoss += stake
		} else {
			out.Won = true
			out.Delta = winFactor * stake
			p.CasinoWin += out.Delta
		}
		p.Coin += out.Delta
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
