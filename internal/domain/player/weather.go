package player

type WeatherKind string

const (
	WeatherClear        WeatherKind = "clear"
	WeatherClouds       WeatherKind = "clouds"
	WeatherFog          WeatherKind = "fog"
	WeatherDrizzle      WeatherKind = "drizzle"
	WeatherRain         WeatherKind = "rain"
	WeatherSnow         WeatherKind = "snow"
	WeatherThunderstorm WeatherKind = "thunderstorm"
)

type Weather struct {
	TempC float64     `json:"temp_c"`
	Kind  WeatherKind `json:"kind"`
}

func (w Weather) Wet() bool {
	return w.Kind == WeatherRain || w.Kind == WeatherDrizzle || w.Kind == WeatherThunderstorm
}

type lootEntry struct {
	name string
	min  int64
	max  int64
}

// streetLoot builds the street loot table for the given weather.
func streetLoot(w Weather) []lootEntry {
	var snow, water int64 = 2, 2
	switch {
	case w.TempC <= -15:
		snow = 10
	case w.TempC <= -5:
		snow = 5
	}
	switch w.Kind {
	case WeatherSnow:
		snow *= 3
	case WeatherRain:
		water *= 3
	}

	table := []lootEntry{
		{name: "coin", min: 1, max: 50},
		{name: "grass", min: 1, max: 3},
		{name: "mushroom", min: 1, max: 3},
		{name: "water", min: 2 * water, max: 3 * water},
		{name: "tea-leaf", min: 1, max: 3},
		{name: "butterfly", min: 5, max: 10},
	}
	if w.TempC < 0 {
		table = append(table, lootEntry{name: "snowball", min: 10 * snow, max: 20 * snow})
	}
	return table
}
