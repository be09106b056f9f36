package player

import (
	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

type ItemGain struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type Reward struct {
	Type     ActionType `json:"type"`
	Coin     int64      `json:"coin"`
	XP       float64    `json:"xp"`
	Items    []ItemGain `json:"items,omitempty"`
	Doubled  bool       `json:"doubled,omitempty"`
	Fatigue  int64      `json:"fatigue"`
	Hunger   int64      `json:"hunger"`
	Mood     int64      `json:"mood"`
	PetXP    float64    `json:"pet_xp,omitempty"`
	UsedGear string     `json:"used_gear,omitempty"`
}

func (r *Reward) addItem(name string, qty int64) {
	for i := range r.Items {
		if r.Items[i].Name == name {
			r.Items[i].Quantity += qty
			return
		}
	}
	r.Items = append(r.Items, ItemGain{Name: name, Quantity: qty})
}

// CompleteInput carries what a reward roll needs besides the player.
type CompleteInput struct {
	Weather     Weather
	Pet         *Pet
	HasUmbrella bool
}

// Complete rolls the reward for the player's current action and applies
// vitals, coin and experience changes to p (and its pet). Item gains are
// returned for the caller to store. The current action is cleared.
func Complete(r items.Rand, p *Player, in CompleteInput) Reward {
	if p.Action == nil {
		return Reward{}
	}
	t := p.Action.Type
	var rw Reward
	switch t {
	case ActionStreet:
		rw = completeStreet(r, p, in)
	case ActionWork:
		rw = completeWork(r, p)
	case ActionSleep:
		rw = completeSleep(r, p)
	case ActionGame:
		rw = completeGame(r, p)
	}
	rw.Type = t
	p.Progress.XP += rw.XP
	p.Coin += rw.Coin
	p.Vitals.Fatigue += rw.Fatigue
	p.Vitals.Hunger += rw.Hunger
	p.Vitals.Mood += rw.Mood
	p.Finish()
	return rw
}

func luckRoll(r items.Rand, luck int64) bool {
	return items.RandRange(r, 1, 100) < luck
}

func completeStreet(r items.Rand, p *Player, in CompleteInput) Reward {
	var rw Reward
	table := streetLoot(in.Weather)
	draws := items.RandRange(r, 1, int64(len(table)))
	for i := int64(0); i < draws; i++ {
		entry := table[r.IntN(len(table))]
		qty := items.RandRange(r, entry.min, entry.max)
		if qty <= 0 {
			continue
		}
		if items.RandRange(r, 1, max(p.Luck, 1))+50 < p.Luck {
			qty += items.RandRange(r, 10, 20)
		}
		if entry.name == items.CoinName {
			rw.Coin += qty
			continue
		}
		rw.addItem(entry.name, qty)
	}

	rw.XP = items.RandUniform(r, 3.0, 5.0)
	rw.Hunger = items.RandRange(r, 2, 5)
	rw.Fatigue = items.RandRange(r, 3, 8)
	rw.Mood = -items.RandRange(r, 3, 6)
	if in.Weather.Wet() {
		if in.HasUmbrella {
			rw.UsedGear = "umbrella"
		} else {
			rw.Mood *= 2
		}
	}

	if in.Pet != nil {
		in.Pet.Vitals.Hunger += items.RandRange(r, 0, 5)
		rw.PetXP = items.RandUniform(r, 1.5, 2.5)
		in.Pet.Progress.XP += rw.PetXP
	}
	return rw
}

func completeWork(r items.Rand, p *Player) Reward {
	rw := Reward{
		XP:   items.RandUniform(r, 5.0, 20.0),
		Coin: items.RandRange(r, 100, 200) * max(p.Progress.Level, 1),
	}
	if luckRoll(r, p.Luck) {
		rw.Coin *= 2
		rw.XP += items.RandUniform(r, 5.0, 7.5)
		rw.Doubled = true
	}
	rw.Fatigue = items.RandRange(r, 5, 10)
	rw.Hunger = items.RandRange(r, 3, 6)
	rw.Mood = -items.RandRange(r, 3, 6)
	return rw
}

func completeSleep(r items.Rand, _ *Player) Reward {
	return Reward{
		Fatigue: -items.RandRange(r, 50, 100),
		XP:      items.RandUniform(r, 1.5, 2.0),
	}
}

func completeGame(r items.Rand, p *Player) Reward {
	rw := Reward{
		Fatigue: items.RandRange(r, 0, 10),
		XP:      items.RandUniform(r, 3.5, 5.7),
		Mood:    items.RandRange(r, 5, 10),
	}
	if luckRoll(r, p.Luck) {
		// doubles the resulting mood, not just the gain
		rw.Mood += p.Vitals.Mood + rw.Mood
		rw.Doubled = true
	}
	return rw
}
