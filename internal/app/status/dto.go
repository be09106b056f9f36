package status

import (
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

type Request struct {
	PlayerID int64
}

type AchievementView struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	Glyph   string  `json:"glyph"`
	Goal    int64   `json:"goal"`
	Percent float64 `json:"percent"`
	Awarded bool    `json:"awarded"`
}

type Response struct {
	Player           player.Player     `json:"player"`
	Pet              *player.Pet       `json:"pet,omitempty"`
	Inventory        []inventory.Entry `json:"inventory"`
	Achievements     []AchievementView `json:"achievements"`
	Weather          player.Weather    `json:"weather"`
	RemainingSeconds int64             `json:"remaining_seconds"`
	ServerTime       time.Time         `json:"server_time"`
}
