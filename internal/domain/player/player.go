package player

import (
	"strconv"
	"time"
)

type Vitals struct {
	Health  int64 `json:"health"`
	Mood    int64 `json:"mood"`
	Hunger  int64 `json:"hunger"`
	Fatigue int64 `json:"fatigue"`
}

type Progress struct {
	Level int64   `json:"level"`
	XP    float64 `json:"xp"`
	MaxXP float64 `json:"max_xp"`
}

type Violation struct {
	Reason string     `json:"reason"`
	Kind   string     `json:"kind"`
	At     time.Time  `json:"at"`
	Until  *time.Time `json:"until,omitempty"`
}

func (v Violation) Expired(now time.Time) bool {
	return v.Until != nil && v.Until.Before(now)
}

type Player struct {
	ID                  int64            `json:"id"`
	Name                string           `json:"name"`
	RegisteredAt        time.Time        `json:"registered_at"`
	Vitals              Vitals           `json:"vitals"`
	Progress            Progress         `json:"progress"`
	Coin                int64            `json:"coin"`
	Luck                int64            `json:"luck"`
	Action              *Action          `json:"action,omitempty"`
	MetEncounter        bool             `json:"met_encounter"`
	Encounter           *Encounter       `json:"encounter,omitempty"`
	AchievementProgress map[string]int64 `json:"achievement_progress"`
	Violations          []Violation      `json:"violations"`
	CasinoWin           int64            `json:"casino_win"`
	CasinoLoss          int64            `json:"casino_loss"`
	QuestFee            int64            `json:"quest_fee"`
	MarketSlots         int64            `json:"market_slots"`
	PendingUpgrades     int64            `json:"pending_upgrades"`
	Revision            int64            `json:"revision"`
}

// New returns a freshly registered player.
func New(id int64, name string, now time.Time) Player {
	return Player{
		ID:           id,
		Name:         name,
		RegisteredAt: now,
		Vitals:       Vitals{Health: 100, Mood: 100},
		Progress:     Progress{Level: 1, MaxXP: 50},
		Luck:         1,
		QuestFee:     DefaultQuestFee,
		MarketSlots:  DefaultMarketSlots,
	}
}

func (p *Player) Stats() (*Progress, *Vitals) { return &p.Progress, &p.Vitals }

func (p *Player) Busy() bool { return p.Action != nil }

// DropExpiredViolations keeps violations without expiry or with expiry not yet passed.
func (p *Player) DropExpiredViolations(now time.Time) int {
	kept := p.Violations[:0]
	dropped := 0
	for _, v := range p.Violations {
		if v.Expired(now) {
			dropped++
			continue
		}
		kept = append(kept, v)
	}
	p.Violations = kept
	return dropped
}

// Clone copies the reference fields so the result can be mutated independently.
func (p Player) Clone() Player {
	out := p
	if p.Action != nil {
		a := *p.Action
		out.Action = &a
	}
	if p.Encounter != nil {
		e := *p.Encounter
		out.Encounter = &e
	}
	if p.AchievementProgress != nil {
		out.AchievementProgress = make(map[string]int64, len(p.AchievementProgress))
		for k, v := range p.AchievementProgress {
			out.AchievementProgress[k] = v
		}
	}
	if p.Violations != nil {
		out.Violations = append([]Violation(nil), p.Violations...)
	}
	return out
}

type Pet struct {
	ID       string   `json:"id"`
	OwnerID  int64    `json:"owner_id"`
	Name     string   `json:"name"`
	Progress Progress `json:"progress"`
	Vitals   Vitals   `json:"vitals"`
}

func NewPet(id string, owner int64, name string) Pet {
	if name == "" {
		name = "Doggo"
	}
	return Pet{
		ID:       id,
		OwnerID:  owner,
		Name:     name,
		Progress: Progress{Level: 1, MaxXP: 50},
		Vitals:   Vitals{Health: 100},
	}
}

func (p *Pet) Stats() (*Progress, *Vitals) { return &p.Progress, &p.Vitals }

func (p Pet) RecordID() string { return p.ID }
func (p Pet) RecordOwner() int64 { return p.OwnerID }

// Watermark records the last action instance a completion message was sent for.
type Watermark struct {
	OwnerID    int64     `json:"owner_id"`
	ActionID   string    `json:"action_id"`
	NotifiedAt time.Time `json:"notified_at"`
}

func (w Watermark) RecordID() string { return watermarkID(w.OwnerID) }
func (w Watermark) RecordOwner() int64 { return w.OwnerID }

func WatermarkID(owner int64) string { return watermarkID(owner) }

func watermarkID(owner int64) string {
	return "wm-" + strconv.FormatInt(owner, 10)
}
