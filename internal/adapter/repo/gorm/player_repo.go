package gormrepo

import (
	"context"
	"errors"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/gorm/model"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/player"

	"gorm.io/gorm"
)

type PlayerRepo struct {
	db *gorm.DB
}

func NewPlayerRepo(db *gorm.DB) PlayerRepo {
	return PlayerRepo{db: db}
}

func (r PlayerRepo) Get(ctx context.Context, id int64) (player.Player, error) {
	var row model.Player
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return player.Player{}, ports.ErrNotFound
		}
		return player.Player{}, err
	}
	return playerFromRow(row)
}

func (r PlayerRepo) List(ctx context.Context) ([]player.Player, error) {
	var rows []model.Player
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		p, err := playerFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r PlayerRepo) Create(ctx context.Context, p player.Player) error {
	row, err := playerToRow(p)
	if err != nil {
		return err
	}
	if err := getDBFromCtx(ctx, r.db).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r PlayerRepo) SaveWithRevision(ctx context.Context, p player.Player, expected int64) error {
	row, err := playerToRow(p)
	if err != nil {
		return err
	}
	updates := map[string]any{
		"name":                 row.Name,
		"health":               row.Health,
		"mood":                 row.Mood,
		"hunger":               row.Hunger,
		"fatigue":              row.Fatigue,
		"level":                row.Level,
		"xp":                   row.Xp,
		"max_xp":               row.MaxXp,
		"coin":                 row.Coin,
		"luck":                 row.Luck,
		"action":               row.Action,
		"met_encounter":        row.MetEncounter,
		"encounter":            row.Encounter,
		"achievement_progress": row.AchievementProgress,
		"violations":           row.Violations,
		"casino_win":           row.CasinoWin,
		"casino_loss":          row.CasinoLoss,
		"quest_fee":            row.QuestFee,
		"market_slots":         row.MarketSlots,
		"pending_upgrades":     row.PendingUpgrades,
		"revision":             row.Revision,
	}
	db := getDBFromCtx(ctx, r.db)
	res := db.Model(&model.Player{}).
		Where("id = ? AND revision = ?", p.ID, expected).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := db.Model(&model.Player{}).Where("id = ?", p.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ports.ErrNotFound
		}
		return ports.ErrConflict
	}
	return nil
}
