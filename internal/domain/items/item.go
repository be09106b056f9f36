package items

import (
	"errors"
	"fmt"
	"strings"
)

// CoinName is the reserved name for the coin balance. It is never an inventory item.
const CoinName = "coin"

// RewardBox is granted once per gained level.
const RewardBox = "box"

var ErrUnknownItem = errors.New("unknown item")

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownItem.Error(), e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrUnknownItem
}

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// StackKind tells whether instances merge into one quantity or stay separate units.
type StackKind int

const (
	Countable StackKind = iota
	Usable
)

func (k StackKind) String() string {
	if k == Usable {
		return "usable"
	}
	return "countable"
}

type EffectKind string

const (
	EffectNone                   EffectKind = ""
	EffectHungerRestore          EffectKind = "hunger_restore"
	EffectFatigueRestore         EffectKind = "fatigue_restore"
	EffectHealthRestore          EffectKind = "health_restore"
	EffectXPBoost                EffectKind = "xp_boost"
	EffectLuckBoost              EffectKind = "luck_boost"
	EffectRandomBoxOpen          EffectKind = "random_box_open"
	EffectActionTimeReduction    EffectKind = "action_time_reduction"
	EffectFatigueResetHealthCost EffectKind = "fatigue_reset_health_cost"
	EffectNotImplemented         EffectKind = "not_implemented"
)

type Effect struct {
	Kind   EffectKind
	Amount int64
}

// Range is an inclusive integer interval.
type Range struct {
	Min int64
	Max int64
}

type Item struct {
	Name         string
	AltNames     []string
	Glyph        string
	Description  string
	Rarity       Rarity
	Kind         StackKind
	Price        int64
	Craft        map[string]int64
	Effect       Effect
	Consumable   bool
	Tradeable    bool
	TaskEligible bool
	TaskCoin     Range
	Exchange     Range
	// Decay is the condition lost per use of a usable item.
	Decay [2]float64
}

func (i Item) Craftable() bool {
	return len(i.Craft) > 0
}

func (i Item) matches(name string) bool {
	if strings.EqualFold(i.Name, name) {
		return true
	}
	for _, alt := range i.AltNames {
		if strings.EqualFold(alt, name) {
			return true
		}
	}
	return false
}

// Lookup resolves a name or alternative name to its definition.
func Lookup(name string) (Item, error) {
	name = strings.TrimSpace(name)
	for _, it := range catalog {
		if it.matches(name) {
			return it, nil
		}
	}
	return Item{}, &NotFoundError{Name: name}
}

func MustLookup(name string) Item {
	it, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return it
}

func All() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}

func Filter(keep func(Item) bool) []Item {
	out := make([]Item, 0, len(catalog))
	for _, it := range catalog {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Rand is the subset of *math/rand/v2.Rand the catalog rolls need.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// RandRange returns a value in [lo, hi].
func RandRange(r Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + int64(r.IntN(int(hi-lo+1)))
}

func RandUniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func (rg Range) Roll(r Rand) int64 {
	return RandRange(r, rg.Min, rg.Max)
}

// QuantityForRarity is the number of units a random drop of the given rarity yields.
func QuantityForRarity(r Rand, rarity Rarity) int64 {
	switch rarity {
	case Common:
		return RandRange(r, 5, 20)
	case Uncommon:
		return RandRange(r, 3, 5)
	case Rare:
		return RandRange(r, 1, 2)
	case Epic:
		return RandRange(r, 0, 2)
	default:
		return RandRange(r, 0, 1)
	}
}
