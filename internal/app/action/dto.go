package action

import (
	"fmt"
	"strings"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

type Request struct {
	PlayerID int64             `json:"-"`
	Type     player.ActionType `json:"type"`
}

type Outcome string

const (
	OutcomeStarted    Outcome = "started"
	OutcomeInProgress Outcome = "in_progress"
	OutcomeEncounter  Outcome = "encounter"
	OutcomeCompleted  Outcome = "completed"
)

type Response struct {
	Outcome   Outcome           `json:"outcome"`
	Action    *player.Action    `json:"action,omitempty"`
	Remaining time.Duration     `json:"remaining_ns"`
	Reward    *player.Reward    `json:"reward,omitempty"`
	Encounter *player.Encounter `json:"encounter,omitempty"`
	Player    player.Player     `json:"player"`
}

var verbs = map[player.ActionType]string{
	player.ActionStreet: "walking",
	player.ActionWork:   "working",
	player.ActionSleep:  "sleeping",
	player.ActionGame:   "playing",
}

// Text renders the response as a chat message.
func (r Response) Text() string {
	switch r.Outcome {
	case OutcomeStarted:
		return fmt.Sprintf("you started %s, back in %s", verbs[r.Action.Type], r.Remaining.Round(time.Minute))
	case OutcomeInProgress:
		return fmt.Sprintf("still %s, %s left", verbs[r.Action.Type], r.Remaining.Round(time.Minute))
	case OutcomeEncounter:
		return EncounterText(*r.Encounter)
	case OutcomeCompleted:
		return RewardText(*r.Reward)
	}
	return ""
}

func EncounterText(e player.Encounter) string {
	switch e.Kind {
	case player.EncounterDog:
		return fmt.Sprintf("🐶 a stray dog follows you. give it %d bones to keep it?", e.Quantity)
	case player.EncounterTrader:
		it := items.MustLookup(e.Item)
		return fmt.Sprintf("🧔 a trader offers %d %s %s for %d coin", e.Quantity, it.Glyph, it.Name, e.Price)
	case player.EncounterChest:
		return "🧰 you found a chest on the road. open it?"
	}
	return ""
}

func RewardText(rw player.Reward) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s finished: +%.1f xp", rw.Type, rw.XP)
	if rw.Coin > 0 {
		fmt.Fprintf(&b, ", +%d coin", rw.Coin)
	}
	for _, g := range rw.Items {
		it := items.MustLookup(g.Name)
		fmt.Fprintf(&b, ", +%d %s %s", g.Quantity, it.Glyph, it.Name)
	}
	if rw.Doubled {
		b.WriteString(" (lucky!)")
	}
	if rw.UsedGear != "" {
		fmt.Fprintf(&b, ", your %s kept you dry", rw.UsedGear)
	}
	return b.String()
}
