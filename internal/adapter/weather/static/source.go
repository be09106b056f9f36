package static

import (
	"context"

	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

// Source reports the same configured weather every time.
type Source struct {
	Weather player.Weather
}

func (s Source) Current(ctx context.Context) (player.Weather, error) {
	if err := ctx.Err(); err != nil {
		return player.Weather{}, err
	}
	if s.Weather.Kind == "" {
		return player.Weather{Kind: player.WeatherClear, TempC: s.Weather.TempC}, nil
	}
	return s.Weather, nil
}
