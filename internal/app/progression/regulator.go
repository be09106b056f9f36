package progression

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

// Report describes what one regulator pass changed and is turned into
// chat messages once the surrounding transaction commits.
type Report struct {
	PlayerID  int64
	Levels    int
	Level     int64
	PetName   string
	PetLevels int
	PetLevel  int64
	Awards    []achievement.Definition
}

func (r Report) Empty() bool {
	return r.Levels == 0 && r.PetLevels == 0 && len(r.Awards) == 0
}

// Messages renders one message per gained level, one per pet level and one per award.
func (r Report) Messages() []string {
	out := make([]string, 0, r.Levels+r.PetLevels+len(r.Awards))
	box := items.MustLookup(items.RewardBox)
	for i := 0; i < r.Levels; i++ {
		lvl := r.Level - int64(r.Levels) + int64(i) + 1
		out = append(out, fmt.Sprintf("🎉 level up! you reached level %d and got 1 %s %s", lvl, box.Glyph, box.Name))
	}
	for i := 0; i < r.PetLevels; i++ {
		lvl := r.PetLevel - int64(r.PetLevels) + int64(i) + 1
		out = append(out, fmt.Sprintf("🐶 %s reached level %d", r.PetName, lvl))
	}
	for _, d := range r.Awards {
		out = append(out, fmt.Sprintf("%s achievement unlocked: %s (%s)", d.Glyph, d.Name, d.Description))
	}
	return out
}

// Regulator brings a player back inside the stat invariants and persists it.
type Regulator struct {
	Players   ports.PlayerRepository
	Pets      ports.PetRepository
	Inventory inventory.Service
	Tracker   Tracker
	Notifier  ports.Notifier
	Logger    *slog.Logger
}

func (r Regulator) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// NormalizeAndLevelUp levels up, clamps, checks achievements, regulates
// the pet and saves p with a bumped revision. p.Revision holds the new
// revision on success.
func (r Regulator) NormalizeAndLevelUp(ctx context.Context, p *player.Player) (Report, error) {
	rep := Report{PlayerID: p.ID}

	rep.Levels = player.RegulatePlayer(p)
	rep.Level = p.Progress.Level
	if rep.Levels > 0 {
		if err := r.Inventory.AddByName(ctx, p.ID, items.RewardBox, int64(rep.Levels)); err != nil {
			return Report{}, fmt.Errorf("grant level boxes: %w", err)
		}
	}

	awards, err := r.Tracker.CheckAchievements(ctx, p)
	if err != nil {
		return Report{}, err
	}
	rep.Awards = awards
	// rewards may have pushed coin around
	player.RegulatePlayer(p)

	if r.Pets != nil {
		pets, err := r.Pets.GetAll(ctx, p.ID)
		if err != nil {
			return Report{}, fmt.Errorf("load pet: %w", err)
		}
		if len(pets) > 0 {
			pet := pets[0]
			rep.PetName = pet.Name
			rep.PetLevels = player.Regulate(&pet)
			rep.PetLevel = pet.Progress.Level
			if err := r.Pets.Update(ctx, pet); err != nil {
				return Report{}, fmt.Errorf("save pet: %w", err)
			}
		}
	}

	expected := p.Revision
	p.Revision = expected + 1
	if err := r.Players.SaveWithRevision(ctx, *p, expected); err != nil {
		p.Revision = expected
		return Report{}, err
	}
	return rep, nil
}

// Announce delivers the report. Failures are logged, never returned:
// game state is already committed.
func (r Regulator) Announce(ctx context.Context, rep Report) {
	if r.Notifier == nil || rep.Empty() {
		return
	}
	for _, msg := range rep.Messages() {
		if err := r.Notifier.Notify(ctx, rep.PlayerID, msg); err != nil {
			r.logger().Warn("progress notice not delivered", "player_id", rep.PlayerID, "err", err)
		}
	}
}
