package player

import (
	"errors"
	"fmt"
)

const (
	DefaultQuestFee    = 2
	DefaultMarketSlots = 4

	// market slots are offered while the player has at most this many
	marketSlotOfferLimit = 10
	luckOfferMinLevel    = 10
	luckOfferLimit       = 15
)

type Upgrade string

const (
	UpgradeLuck   Upgrade = "luck"
	UpgradeMarket Upgrade = "market"
)

var (
	ErrNoPendingUpgrade   = errors.New("no upgrade to pick")
	ErrUpgradeUnavailable = errors.New("upgrade not available")
)

// MarketSlotLimit is the number of listings the player may keep at once.
func (p Player) MarketSlotLimit() int64 {
	if p.MarketSlots <= 0 {
		return DefaultMarketSlots
	}
	return p.MarketSlots
}

// QuestFeeDue is the coin a quest reroll costs right now.
func (p Player) QuestFeeDue() int64 {
	if p.QuestFee <= 0 {
		return DefaultQuestFee
	}
	return p.QuestFee
}

// UpgradeOptions lists what a level-up may be spent on at the current stats.
func (p Player) UpgradeOptions() []Upgrade {
	var out []Upgrade
	if p.MarketSlotLimit() <= marketSlotOfferLimit {
		out = append(out, UpgradeMarket)
	}
	if p.Progress.Level >= luckOfferMinLevel && p.Luck <= luckOfferLimit {
		out = append(out, UpgradeLuck)
	}
	return out
}

// ApplyUpgrade spends one pending level-up on u.
func (p *Player) ApplyUpgrade(u Upgrade) error {
	if p.PendingUpgrades <= 0 {
		return ErrNoPendingUpgrade
	}
	offered := false
	for _, o := range p.UpgradeOptions() {
		if o == u {
			offered = true
		}
	}
	if !offered {
		return fmt.Errorf("%w: %q", ErrUpgradeUnavailable, u)
	}
	switch u {
	case UpgradeLuck:
		p.Luck++
	case UpgradeMarket:
		p.MarketSlots = p.MarketSlotLimit() + 1
	}
	p.PendingUpgrades--
	return nil
}
