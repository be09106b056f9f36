package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

type UpgradeRequest struct {
	PlayerID int64          `json:"-"`
	Choice   player.Upgrade `json:"choice"`
}

type UpgradeResponse struct {
	Player player.Player `json:"player"`
	// Options is what the next pending pick may go to, empty when none is left.
	Options []player.Upgrade `json:"options"`
}

// UpgradeUseCase spends a level-up pick on one luck point or one market slot.
type UpgradeUseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Regulator progression.Regulator
	Retry     txretry.Policy
}

func (u UpgradeUseCase) Execute(ctx context.Context, req UpgradeRequest) (UpgradeResponse, error) {
	var (
		out UpgradeResponse
		rep progression.Report
	)
	err := u.Retry.InTx(ctx, u.TxManager, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		if err := p.ApplyUpgrade(req.Choice); err != nil {
			if errors.Is(err, player.ErrNoPendingUpgrade) {
				return fmt.Errorf("%w: %w", ports.ErrPreconditionFailed, err)
			}
			return fmt.Errorf("%w: %w", ports.ErrInvalidOperation, err)
		}
		rep, err = u.Regulator.NormalizeAndLevelUp(txCtx, &p)
		if err != nil {
			return err
		}
		out = UpgradeResponse{Player: p, Options: []player.Upgrade{}}
		if p.PendingUpgrades > 0 {
			out.Options = p.UpgradeOptions()
		}
		return nil
	})
	if err != nil {
		return UpgradeResponse{}, err
	}
	u.Regulator.Announce(ctx, rep)
	return out, nil
}
