package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

// Drift nudges every player's vitals a little, expires violations and
// re-runs the regulator.
type Drift struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Regulator progression.Regulator
	Rand      ports.Rand
	Now       func() time.Time
	Logger    *slog.Logger
	// Retry reruns a player whose save raced a command.
	Retry txretry.Policy
}

func (d Drift) Name() string { return "drift" }

func (d Drift) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}

// RunOnce processes every player. A failing player is logged and skipped.
func (d Drift) RunOnce(ctx context.Context) error {
	all, err := d.Players.List(ctx)
	if err != nil {
		return err
	}
	nowFn := d.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	for _, p := range all {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.drift(ctx, p.ID, nowFn()); err != nil {
			d.logger().Error("drift failed", "player_id", p.ID, "err", err)
		}
	}
	return nil
}

func (d Drift) drift(ctx context.Context, id int64, now time.Time) error {
	var rep progression.Report
	err := d.Retry.InTx(ctx, d.TxManager, func(txCtx context.Context) error {
		p, err := d.Players.Get(txCtx, id)
		if err != nil {
			return err
		}
		applyDrift(d.Rand, &p)
		p.DropExpiredViolations(now)
		rep, err = d.Regulator.NormalizeAndLevelUp(txCtx, &p)
		return err
	})
	if err != nil {
		return err
	}
	d.Regulator.Announce(ctx, rep)
	return nil
}

func applyDrift(r ports.Rand, p *player.Player) {
	switch r.IntN(6) {
	case 0:
		p.Vitals.Hunger++
	case 1:
		p.Vitals.Fatigue++
	case 2:
		p.Vitals.Mood--
	}
}
