package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

type UseCase struct {
	TxManager ports.TxManager
	Players   ports.PlayerRepository
	Pets      ports.PetRepository
	Inventory inventory.Service
	Regulator progression.Regulator
	Weather   ports.WeatherSource
	Metrics   ports.ActionMetrics
	Rand      ports.Rand
	NewID     ports.IDGenerator
	Now       func() time.Time
	Logger    *slog.Logger
	Retry     txretry.Policy
}

func (u UseCase) logger() *slog.Logger {
	if u.Logger == nil {
		return slog.Default()
	}
	return u.Logger
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

// Execute starts, inspects or completes the player's timed action. The whole
// read-modify-write is retried on a revision conflict.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.PlayerID == 0 || !req.Type.Valid() {
		return Response{}, ErrInvalidRequest
	}

	retry := u.Retry
	retry.OnConflict = func(int) { u.recordConflict() }
	if retry.Logger == nil {
		retry.Logger = u.logger()
	}

	var (
		out Response
		rep progression.Report
	)
	err := retry.Do(ctx, func(ctx context.Context) error {
		var err error
		out, rep, err = u.attempt(ctx, req)
		return err
	})
	if err != nil {
		if errors.Is(err, ports.ErrConflict) {
			return Response{}, fmt.Errorf("action %s for player %d: %w", req.Type, req.PlayerID, err)
		}
		u.recordFailure()
		return Response{}, err
	}
	u.recordSuccess(out.Outcome)
	u.Regulator.Announce(ctx, rep)
	return out, nil
}

func (u UseCase) attempt(ctx context.Context, req Request) (Response, progression.Report, error) {
	var (
		out Response
		rep progression.Report
	)
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := u.Players.Get(txCtx, req.PlayerID)
		if err != nil {
			return err
		}
		now := u.now()

		if p.Action == nil {
			out, err = u.start(txCtx, p, req.Type, now)
			return err
		}
		if p.Action.Type != req.Type {
			return &BusyError{Current: p.Action.Type, Remaining: p.Action.Remaining(now)}
		}
		if !p.Action.Done(now) {
			out, err = u.progress(txCtx, p, now)
			return err
		}
		out, rep, err = u.complete(txCtx, p)
		return err
	})
	return out, rep, err
}

func (u UseCase) save(ctx context.Context, p *player.Player) error {
	expected := p.Revision
	p.Revision = expected + 1
	if err := u.Players.SaveWithRevision(ctx, *p, expected); err != nil {
		p.Revision = expected
		return err
	}
	return nil
}

func (u UseCase) start(ctx context.Context, p player.Player, t player.ActionType, now time.Time) (Response, error) {
	if err := player.CheckStart(p, t); err != nil {
		return Response{}, &PreconditionError{Reason: err}
	}
	d := player.Duration(u.Rand, t)
	a := p.Start(u.NewID(), t, now, d)
	if err := u.save(ctx, &p); err != nil {
		return Response{}, err
	}
	return Response{Outcome: OutcomeStarted, Action: &a, Remaining: d, Player: p}, nil
}

func (u UseCase) pet(ctx context.Context, owner int64) (*player.Pet, error) {
	if u.Pets == nil {
		return nil, nil
	}
	pets, err := u.Pets.GetAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return nil, nil
	}
	return &pets[0], nil
}

// progress is the read view of a running action. Only a street walk may
// change state here, by meeting its single encounter.
func (u UseCase) progress(ctx context.Context, p player.Player, now time.Time) (Response, error) {
	out := Response{Outcome: OutcomeInProgress, Remaining: p.Action.Remaining(now)}
	if p.Action.Type == player.ActionStreet && !p.MetEncounter {
		pet, err := u.pet(ctx, p.ID)
		if err != nil {
			return Response{}, err
		}
		if enc := player.RollEncounter(u.Rand, p, pet != nil, now); enc != nil {
			p.MetEncounter = true
			p.Encounter = enc
			if err := u.save(ctx, &p); err != nil {
				return Response{}, err
			}
			out.Outcome = OutcomeEncounter
		}
	}
	out.Action = p.Action
	out.Encounter = p.Encounter
	out.Player = p
	return out, nil
}

func (u UseCase) weather(ctx context.Context) player.Weather {
	if u.Weather == nil {
		return player.Weather{Kind: player.WeatherClear, TempC: 15}
	}
	w, err := u.Weather.Current(ctx)
	if err != nil {
		u.logger().Warn("weather unavailable, assuming clear", "err", err)
		return player.Weather{Kind: player.WeatherClear, TempC: 15}
	}
	return w
}

func (u UseCase) complete(ctx context.Context, p player.Player) (Response, progression.Report, error) {
	t := p.Action.Type
	in := player.CompleteInput{}

	pet, err := u.pet(ctx, p.ID)
	if err != nil {
		return Response{}, progression.Report{}, err
	}
	var wearUmbrella func() error
	if t == player.ActionStreet {
		in.Weather = u.weather(ctx)
		in.Pet = pet
		if in.Weather.Wet() {
			e, err := u.Inventory.FindOne(ctx, p.ID, "umbrella")
			switch {
			case err == nil:
				in.HasUmbrella = true
				wearUmbrella = func() error {
					decay := items.MustLookup(e.Name).Decay
					_, err := u.Inventory.Wear(ctx, e, items.RandUniform(u.Rand, decay[0], decay[1]))
					return err
				}
			case !errors.Is(err, ports.ErrNotFound):
				return Response{}, progression.Report{}, err
			}
		}
	}

	rw := player.Complete(u.Rand, &p, in)
	for _, g := range rw.Items {
		if err := u.Inventory.AddByName(ctx, p.ID, g.Name, g.Quantity); err != nil {
			return Response{}, progression.Report{}, fmt.Errorf("store %s: %w", g.Name, err)
		}
	}
	if rw.UsedGear != "" && wearUmbrella != nil {
		if err := wearUmbrella(); err != nil {
			return Response{}, progression.Report{}, err
		}
	}
	if in.Pet != nil && u.Pets != nil {
		if err := u.Pets.Update(ctx, *in.Pet); err != nil {
			return Response{}, progression.Report{}, err
		}
	}

	if err := u.Regulator.Tracker.IncrementProgress(ctx, &p, t.Counter(), 1); err != nil {
		return Response{}, progression.Report{}, err
	}
	rep, err := u.Regulator.NormalizeAndLevelUp(ctx, &p)
	if err != nil {
		return Response{}, progression.Report{}, err
	}
	u.logger().Info("action completed", "player_id", p.ID, "action", t, "coin", rw.Coin, "xp", rw.XP)
	return Response{Outcome: OutcomeCompleted, Reward: &rw, Player: p}, rep, nil
}

func (u UseCase) recordSuccess(o Outcome) {
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(o))
	}
}

func (u UseCase) recordConflict() {
	if u.Metrics != nil {
		u.Metrics.RecordConflict()
	}
}

func (u UseCase) recordFailure() {
	if u.Metrics != nil {
		u.Metrics.RecordFailure()
	}
}
