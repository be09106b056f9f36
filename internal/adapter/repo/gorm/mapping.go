package gormrepo

import (
	"encoding/json"
	"fmt"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/gorm/model"
	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
	"github.com/HamletSargsyan/livebot/internal/domain/quest"
	"github.com/HamletSargsyan/livebot/internal/domain/trade"
)

func playerToRow(p player.Player) (model.Player, error) {
	row := model.Player{
		ID:              p.ID,
		Name:            p.Name,
		RegisteredAt:    p.RegisteredAt,
		Health:          p.Vitals.Health,
		Mood:            p.Vitals.Mood,
		Hunger:          p.Vitals.Hunger,
		Fatigue:         p.Vitals.Fatigue,
		Level:           p.Progress.Level,
		Xp:              p.Progress.XP,
		MaxXp:           p.Progress.MaxXP,
		Coin:            p.Coin,
		Luck:            p.Luck,
		MetEncounter:    p.MetEncounter,
		CasinoWin:       p.CasinoWin,
		CasinoLoss:      p.CasinoLoss,
		QuestFee:        p.QuestFee,
		MarketSlots:     p.MarketSlots,
		PendingUpgrades: p.PendingUpgrades,
		Revision:        p.Revision,
	}
	var err error
	if row.Action, err = optionalJSON(p.Action); err != nil {
		return model.Player{}, fmt.Errorf("encode action: %w", err)
	}
	if row.Encounter, err = optionalJSON(p.Encounter); err != nil {
		return model.Player{}, fmt.Errorf("encode encounter: %w", err)
	}
	progress := p.AchievementProgress
	if progress == nil {
		progress = map[string]int64{}
	}
	if row.AchievementProgress, err = encodeJSON(progress); err != nil {
		return model.Player{}, fmt.Errorf("encode achievement progress: %w", err)
	}
	violations := p.Violations
	if violations == nil {
		violations = []player.Violation{}
	}
	if row.Violations, err = encodeJSON(violations); err != nil {
		return model.Player{}, fmt.Errorf("encode violations: %w", err)
	}
	return row, nil
}

func playerFromRow(row model.Player) (player.Player, error) {
	p := player.Player{
		ID:              row.ID,
		Name:            row.Name,
		RegisteredAt:    row.RegisteredAt,
		Vitals:          player.Vitals{Health: row.Health, Mood: row.Mood, Hunger: row.Hunger, Fatigue: row.Fatigue},
		Progress:        player.Progress{Level: row.Level, XP: row.Xp, MaxXP: row.MaxXp},
		Coin:            row.Coin,
		Luck:            row.Luck,
		MetEncounter:    row.MetEncounter,
		CasinoWin:       row.CasinoWin,
		CasinoLoss:      row.CasinoLoss,
		QuestFee:        row.QuestFee,
		MarketSlots:     row.MarketSlots,
		PendingUpgrades: row.PendingUpgrades,
		Revision:        row.Revision,
	}
	if row.Action != nil {
		p.Action = &player.Action{}
		if err := json.Unmarshal([]byte(*row.Action), p.Action); err != nil {
			return player.Player{}, fmt.Errorf("decode action of player %d: %w", row.ID, err)
		}
	}
	if row.Encounter != nil {
		p.Encounter = &player.Encounter{}
		if err := json.Unmarshal([]byte(*row.Encounter), p.Encounter); err != nil {
			return player.Player{}, fmt.Errorf("decode encounter of player %d: %w", row.ID, err)
		}
	}
	if row.AchievementProgress != "" {
		if err := json.Unmarshal([]byte(row.AchievementProgress), &p.AchievementProgress); err != nil {
			return player.Player{}, fmt.Errorf("decode achievement progress of player %d: %w", row.ID, err)
		}
		if len(p.AchievementProgress) == 0 {
			p.AchievementProgress = nil
		}
	}
	if row.Violations != "" {
		if err := json.Unmarshal([]byte(row.Violations), &p.Violations); err != nil {
			return player.Player{}, fmt.Errorf("decode violations of player %d: %w", row.ID, err)
		}
		if len(p.Violations) == 0 {
			p.Violations = nil
		}
	}
	return p, nil
}

func entryToRow(e inventory.Entry) (model.InventoryItem, error) {
	return model.InventoryItem{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		Name:      e.Name,
		Kind:      e.Kind.String(),
		Quantity:  e.Quantity,
		Condition: e.Condition,
	}, nil
}

func entryFromRow(row model.InventoryItem) (inventory.Entry, error) {
	kind := items.Countable
	switch row.Kind {
	case items.Countable.String():
	case items.Usable.String():
		kind = items.Usable
	default:
		return inventory.Entry{}, fmt.Errorf("inventory item %s: unknown kind %q", row.ID, row.Kind)
	}
	return inventory.Entry{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Kind:      kind,
		Quantity:  row.Quantity,
		Condition: row.Condition,
	}, nil
}

func awardToRow(a achievement.Award) (model.Award, error) {
	return model.Award{ID: a.ID, OwnerID: a.OwnerID, Key: a.Key, AwardedAt: a.AwardedAt}, nil
}

func awardFromRow(row model.Award) (achievement.Award, error) {
	return achievement.Award{ID: row.ID, OwnerID: row.OwnerID, Key: row.Key, AwardedAt: row.AwardedAt}, nil
}

func petToRow(p player.Pet) (model.Pet, error) {
	return model.Pet{
		ID:      p.ID,
		OwnerID: p.OwnerID,
		Name:    p.Name,
		Level:   p.Progress.Level,
		Xp:      p.Progress.XP,
		MaxXp:   p.Progress.MaxXP,
		Health:  p.Vitals.Health,
		Mood:    p.Vitals.Mood,
		Hunger:  p.Vitals.Hunger,
		Fatigue: p.Vitals.Fatigue,
	}, nil
}

func petFromRow(row model.Pet) (player.Pet, error) {
	return player.Pet{
		ID:       row.ID,
		OwnerID:  row.OwnerID,
		Name:     row.Name,
		Progress: player.Progress{Level: row.Level, XP: row.Xp, MaxXP: row.MaxXp},
		Vitals:   player.Vitals{Health: row.Health, Mood: row.Mood, Hunger: row.Hunger, Fatigue: row.Fatigue},
	}, nil
}

func watermarkToRow(w player.Watermark) (model.Notification, error) {
	return model.Notification{ID: w.RecordID(), OwnerID: w.OwnerID, ActionID: w.ActionID, NotifiedAt: w.NotifiedAt}, nil
}

func watermarkFromRow(row model.Notification) (player.Watermark, error) {
	return player.Watermark{OwnerID: row.OwnerID, ActionID: row.ActionID, NotifiedAt: row.NotifiedAt}, nil
}

func questToRow(q quest.Quest) (model.Quest, error) {
	return model.Quest{
		ID:        q.ID,
		OwnerID:   q.OwnerID,
		Item:      q.Item,
		Quantity:  q.Quantity,
		Xp:        q.XP,
		Reward:    q.Reward,
		StartedAt: q.StartedAt,
	}, nil
}

func questFromRow(row model.Quest) (quest.Quest, error) {
	return quest.Quest{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Item:      row.Item,
		Quantity:  row.Quantity,
		XP:        row.Xp,
		Reward:    row.Reward,
		StartedAt: row.StartedAt,
	}, nil
}

func giftToRow(g quest.DailyGift) (model.DailyGift, error) {
	picked := g.Items
	if picked == nil {
		picked = []string{}
	}
	raw, err := encodeJSON(picked)
	if err != nil {
		return model.DailyGift{}, fmt.Errorf("encode gift items: %w", err)
	}
	return model.DailyGift{
		ID:              g.RecordID(),
		OwnerID:         g.OwnerID,
		Items:           raw,
		Claimed:         g.Claimed,
		NextClaimableAt: g.NextClaimableAt,
	}, nil
}

func giftFromRow(row model.DailyGift) (quest.DailyGift, error) {
	g := quest.DailyGift{OwnerID: row.OwnerID, Claimed: row.Claimed, NextClaimableAt: row.NextClaimableAt}
	if err := json.Unmarshal([]byte(row.Items), &g.Items); err != nil {
		return quest.DailyGift{}, fmt.Errorf("decode gift items of player %d: %w", row.OwnerID, err)
	}
	return g, nil
}

func exchangerToRow(e trade.Exchanger) (model.Exchanger, error) {
	return model.Exchanger{ID: e.RecordID(), OwnerID: e.OwnerID, Item: e.Item, Price: e.Price, ExpiresAt: e.ExpiresAt}, nil
}

func exchangerFromRow(row model.Exchanger) (trade.Exchanger, error) {
	return trade.Exchanger{OwnerID: row.OwnerID, Item: row.Item, Price: row.Price, ExpiresAt: row.ExpiresAt}, nil
}

func listingToRow(l trade.Listing) (model.Listing, error) {
	return model.Listing{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Item:        l.Item,
		Quantity:    l.Quantity,
		Price:       l.Price,
		PublishedAt: l.PublishedAt,
	}, nil
}

func listingFromRow(row model.Listing) (trade.Listing, error) {
	return trade.Listing{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Item:        row.Item,
		Quantity:    row.Quantity,
		Price:       row.Price,
		PublishedAt: row.PublishedAt,
	}, nil
}

func encodeJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func optionalJSON[T any](v *T) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := encodeJSON(v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
