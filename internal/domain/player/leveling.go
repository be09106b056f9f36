package player

// Leveled is the stat bag shared by players and their pets.
type Leveled interface {
	Stats() (*Progress, *Vitals)
}

// MaxXPForLevel grows strictly with level.
func MaxXPForLevel(level int64) float64 {
	return float64(55*level + 100)
}

// LevelUp converts experience into levels until it no longer clears the threshold.
// It returns the number of levels gained.
func LevelUp(pr *Progress) int {
	if pr.Level < 1 {
		pr.Level = 1
	}
	if pr.MaxXP <= 0 {
		pr.MaxXP = MaxXPForLevel(pr.Level)
	}
	gained := 0
	for pr.XP >= pr.MaxXP {
		pr.XP -= pr.MaxXP
		if pr.XP < 0 {
			pr.XP = 0
		}
		pr.Level++
		pr.MaxXP = MaxXPForLevel(pr.Level)
		gained++
	}
	if pr.XP < 0 {
		pr.XP = 0
	}
	return gained
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampVitals(v *Vitals) {
	v.Health = clamp(v.Health, 0, 100)
	v.Mood = clamp(v.Mood, 0, 100)
	v.Hunger = clamp(v.Hunger, 0, 100)
	v.Fatigue = clamp(v.Fatigue, 0, 100)
}

// Regulate applies the level-up and clamp pass to any leveled entity.
func Regulate(l Leveled) int {
	pr, v := l.Stats()
	gained := LevelUp(pr)
	ClampVitals(v)
	return gained
}

// RegulatePlayer additionally floors the coin balance and luck. Every
// gained level leaves one upgrade to pick while any upgrade is available.
func RegulatePlayer(p *Player) int {
	gained := Regulate(p)
	if gained > 0 && len(p.UpgradeOptions()) > 0 {
		p.PendingUpgrades += int64(gained)
	}
	if p.Coin < 0 {
		p.Coin = 0
	}
	if p.Luck < 1 {
		p.Luck = 1
	}
	return gained
}
