package player

import (
	"errors"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

type ActionType string

const (
	ActionStreet ActionType = "street"
	ActionWork   ActionType = "work"
	ActionSleep  ActionType = "sleep"
	ActionGame   ActionType = "game"
)

func (t ActionType) Valid() bool {
	switch t {
	case ActionStreet, ActionWork, ActionSleep, ActionGame:
		return true
	}
	return false
}

// Achievement counter advanced when an action of this type completes.
func (t ActionType) Counter() string {
	switch t {
	case ActionStreet:
		return "wanderer"
	case ActionWork:
		return "worker"
	case ActionSleep:
		return "sleeper"
	case ActionGame:
		return "gamer"
	}
	return ""
}

type Action struct {
	ID    string     `json:"id"`
	Type  ActionType `json:"type"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

func (a Action) Done(now time.Time) bool {
	return !a.End.After(now)
}

func (a Action) Remaining(now time.Time) time.Duration {
	if a.Done(now) {
		return 0
	}
	return a.End.Sub(now)
}

func (a Action) Elapsed(now time.Time) time.Duration {
	return now.Sub(a.Start)
}

var (
	ErrTooHungry     = errors.New("too hungry")
	ErrTooTired      = errors.New("too tired")
	ErrLevelTooLow   = errors.New("level too low")
	ErrUnknownAction = errors.New("unknown action")
)

const (
	HungerLimit   = 80
	FatigueLimit  = 85
	GameMinLevel  = 3
	streetMinutes = 60
	workMinutes   = 180
)

// CheckStart reports why the player cannot begin an action of type t, if anything.
func CheckStart(p Player, t ActionType) error {
	switch t {
	case ActionStreet, ActionWork:
		if p.Vitals.Hunger >= HungerLimit {
			return ErrTooHungry
		}
		if p.Vitals.Fatigue >= FatigueLimit {
			return ErrTooTired
		}
	case ActionGame:
		if p.Progress.Level < GameMinLevel {
			return ErrLevelTooLow
		}
	case ActionSleep:
	default:
		return ErrUnknownAction
	}
	return nil
}

// Duration rolls how long an action of type t lasts.
func Duration(r items.Rand, t ActionType) time.Duration {
	switch t {
	case ActionStreet:
		return streetMinutes * time.Minute
	case ActionWork:
		return workMinutes * time.Minute
	case ActionSleep:
		return time.Duration(items.RandRange(r, 3, 8)) * time.Hour
	case ActionGame:
		return time.Duration(items.RandRange(r, 0, 3))*time.Hour +
			time.Duration(items.RandRange(r, 15, 20))*time.Minute
	}
	return 0
}

// DurationBounds is the inclusive range Duration can return.
func DurationBounds(t ActionType) (time.Duration, time.Duration) {
	switch t {
	case ActionStreet:
		return streetMinutes * time.Minute, streetMinutes * time.Minute
	case ActionWork:
		return workMinutes * time.Minute, workMinutes * time.Minute
	case ActionSleep:
		return 3 * time.Hour, 8 * time.Hour
	case ActionGame:
		return 15 * time.Minute, 3*time.Hour + 20*time.Minute
	}
	return 0, 0
}

// Start sets the current action. The caller has already checked CheckStart.
func (p *Player) Start(id string, t ActionType, now time.Time, d time.Duration) Action {
	a := Action{ID: id, Type: t, Start: now, End: now.Add(d)}
	p.Action = &a
	p.MetEncounter = false
	p.Encounter = nil
	return a
}

// Finish clears the current action and re-arms the encounter flag.
func (p *Player) Finish() {
	p.Action = nil
	p.MetEncounter = false
}

// Shorten moves the end of the running action closer, never before now.
func (p *Player) Shorten(d time.Duration, now time.Time) {
	if p.Action == nil {
		return
	}
	end := p.Action.End.Add(-d)
	if end.Before(now) {
		end = now
	}
	p.Action.End = end
}
