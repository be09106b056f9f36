package achievement

import "time"

type Definition struct {
	Key         string
	Name        string
	Glyph       string
	Description string
	Goal        int64
	// Reward maps item names to quantities; items.CoinName is paid to the balance.
	Reward map[string]int64
}

type Award struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Key       string    `json:"key"`
	AwardedAt time.Time `json:"awarded_at"`
}

func (a Award) RecordID() string   { return a.ID }
func (a Award) RecordOwner() int64 { return a.OwnerID }

var catalog = []Definition{
	{
		Key: "worker", Name: "hard worker", Glyph: "💼",
		Description: "work 10 times", Goal: 10,
		Reward: map[string]int64{"coin": 10_000},
	},
	{
		Key: "wanderer", Name: "wanderer", Glyph: "🚶",
		Description: "go for a walk 25 times", Goal: 25,
		Reward: map[string]int64{"box": 2},
	},
	{
		Key: "sleeper", Name: "sleepyhead", Glyph: "😴",
		Description: "sleep 20 times", Goal: 20,
		Reward: map[string]int64{"energy-drink": 5},
	},
	{
		Key: "gamer", Name: "gamer", Glyph: "🎮",
		Description: "play 15 times", Goal: 15,
		Reward: map[string]int64{"clover": 1},
	},
	{
		Key: "tycoon", Name: "tycoon", Glyph: "💰",
		Description: "spend 5000 coin on the market", Goal: 5_000,
		Reward: map[string]int64{"ticket": 5},
	},
	{
		Key: "merchant", Name: "merchant", Glyph: "🏪",
		Description: "sell 10 lots on the market", Goal: 10,
		Reward: map[string]int64{"coin": 1_000},
	},
}

func Lookup(key string) (Definition, bool) {
	for _, d := range catalog {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Reached reports whether the progress counter meets the goal.
func (d Definition) Reached(progress map[string]int64) bool {
	return progress[d.Key] >= d.Goal
}

// Increment adds amount to the counter unless the achievement is already awarded.
// It reports whether the counter changed.
func Increment(progress map[string]int64, key string, amount int64, awarded bool) bool {
	if awarded || amount <= 0 || progress == nil {
		return false
	}
	progress[key] += amount
	return true
}

// Percent is the completion share in [0,100].
func (d Definition) Percent(progress map[string]int64) float64 {
	if d.Goal <= 0 {
		return 100
	}
	p := float64(progress[d.Key]) / float64(d.Goal) * 100
	if p > 100 {
		return 100
	}
	return p
}
