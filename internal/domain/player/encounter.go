package player

import (
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

type EncounterKind string

const (
	EncounterDog    EncounterKind = "dog"
	EncounterTrader EncounterKind = "trader"
	EncounterChest  EncounterKind = "chest"
)

// Encounter is a one-off street event waiting for the player's answer.
type Encounter struct {
	Kind     EncounterKind `json:"kind"`
	Item     string        `json:"item,omitempty"`
	Quantity int64         `json:"quantity,omitempty"`
	Price    int64         `json:"price,omitempty"`
	At       time.Time     `json:"at"`
}

var encounterChances = []struct {
	kind   EncounterKind
	chance float64
}{
	{EncounterDog, 6.3},
	{EncounterTrader, 2.2},
	{EncounterChest, 8.2},
}

// RollEncounter decides whether a walk in progress is interrupted. It never
// fires twice for the same action and returns nil when nothing happens.
func RollEncounter(r items.Rand, p Player, hasPet bool, now time.Time) *Encounter {
	if p.Action == nil || p.Action.Type != ActionStreet || p.MetEncounter {
		return nil
	}
	wait := time.Duration(items.RandRange(r, 15, 20)) * time.Minute
	if p.Action.Elapsed(now) < wait {
		return nil
	}

	pick := encounterChances[r.IntN(len(encounterChances))]
	if items.RandUniform(r, 1, 10) > pick.chance {
		return nil
	}
	if pick.kind == EncounterDog && hasPet {
		return nil
	}

	enc := &Encounter{Kind: pick.kind, At: now}
	switch pick.kind {
	case EncounterDog:
		enc.Item = "bone"
		enc.Quantity = items.RandRange(r, 4, 10)
	case EncounterTrader:
		goods := items.Filter(func(it items.Item) bool {
			return it.Rarity == items.Common && it.Price > 0 && it.Tradeable
		})
		it := goods[r.IntN(len(goods))]
		enc.Item = it.Name
		enc.Quantity = items.RandRange(r, 2, 10)
		enc.Price = it.Price * enc.Quantity
	}
	return enc
}
