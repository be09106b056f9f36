package ports

import (
	"context"

	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

// WeatherSource reports the weather street walks are rolled against.
type WeatherSource interface {
	Current(ctx context.Context) (player.Weather, error)
}

// Rand is satisfied by *math/rand/v2.Rand.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// IDGenerator yields opaque unique ids for new records and action instances.
type IDGenerator func() string
