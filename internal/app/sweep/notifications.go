package sweep

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var finishedText = map[player.ActionType]string{
	player.ActionStreet: "🚶 your walk is over",
	player.ActionWork:   "💼 you finished work",
	player.ActionSleep:  "😴 you woke up",
	player.ActionGame:   "🎮 you finished playing",
}

// Notifications tells players their action has ended. Each action instance
// is announced at most once: the watermark advances even when delivery fails.
type Notifications struct {
	Players    ports.PlayerRepository
	Watermarks ports.WatermarkRepository
	Notifier   ports.Notifier
	Now        func() time.Time
	Logger     *slog.Logger
}

func (n Notifications) Name() string { return "notifications" }

func (n Notifications) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

func (n Notifications) RunOnce(ctx context.Context) error {
	all, err := n.Players.List(ctx)
	if err != nil {
		return err
	}
	nowFn := n.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	for _, p := range all {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.Action == nil || !p.Action.Done(nowFn()) {
			continue
		}
		if err := n.notify(ctx, p, nowFn()); err != nil {
			n.logger().Error("notification sweep failed", "player_id", p.ID, "err", err)
		}
	}
	return nil
}

func (n Notifications) notify(ctx context.Context, p player.Player, now time.Time) error {
	wm, err := n.Watermarks.Get(ctx, player.WatermarkID(p.ID))
	exists := err == nil
	if err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	if exists && wm.ActionID == p.Action.ID {
		return nil
	}

	if err := n.Notifier.Notify(ctx, p.ID, finishedText[p.Action.Type]); err != nil {
		n.logger().Warn("completion notice not delivered", "player_id", p.ID, "action", p.Action.Type, "err", err)
	}

	wm = player.Watermark{OwnerID: p.ID, ActionID: p.Action.ID, NotifiedAt: now}
	if exists {
		return n.Watermarks.Update(ctx, wm)
	}
	return n.Watermarks.Add(ctx, wm)
}
