package status

import (
	"context"
	"fmt"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
)

var ErrInvalidRequest = fmt.Errorf("%w: invalid status request", ports.ErrInvalidOperation)

// UseCase is the read-only player view. It never writes.
type UseCase struct {
	Players   ports.PlayerRepository
	Pets      ports.PetRepository
	Inventory ports.InventoryRepository
	Awards    ports.AwardRepository
	Weather   ports.WeatherSource
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.PlayerID == 0 {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	p, err := u.Players.Get(ctx, req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	out := Response{Player: p, ServerTime: now}
	if p.Action != nil {
		out.RemainingSeconds = int64(p.Action.Remaining(now).Seconds())
	}

	pets, err := u.Pets.GetAll(ctx, p.ID)
	if err != nil {
		return Response{}, err
	}
	if len(pets) > 0 {
		out.Pet = &pets[0]
	}

	if out.Inventory, err = u.Inventory.GetAll(ctx, p.ID); err != nil {
		return Response{}, err
	}

	awards, err := u.Awards.GetAll(ctx, p.ID)
	if err != nil {
		return Response{}, err
	}
	awarded := make(map[string]bool, len(awards))
	for _, a := range awards {
		awarded[a.Key] = true
	}
	for _, d := range achievement.All() {
		out.Achievements = append(out.Achievements, AchievementView{
			Key:     d.Key,
			Name:    d.Name,
			Glyph:   d.Glyph,
			Goal:    d.Goal,
			Percent: d.Percent(p.AchievementProgress),
			Awarded: awarded[d.Key],
		})
	}

	if u.Weather != nil {
		if out.Weather, err = u.Weather.Current(ctx); err != nil {
			return Response{}, err
		}
	}
	return out, nil
}
