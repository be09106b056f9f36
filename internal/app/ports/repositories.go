package ports

import (
	"context"

	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
	"github.com/HamletSargsyan/livebot/internal/domain/quest"
	"github.com/HamletSargsyan/livebot/internal/domain/trade"
)

// Record is anything stored under a string id and scoped to one player.
type Record interface {
	RecordID() string
	RecordOwner() int64
}

// Repository is the owner-scoped store every side record goes through.
// Get, Update and Delete return ErrNotFound for a missing id.
type Repository[T Record] interface {
	Get(ctx context.Context, id string) (T, error)
	GetAll(ctx context.Context, owner int64) ([]T, error)
	Add(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, id string) error
}

type PlayerRepository interface {
	Get(ctx context.Context, id int64) (player.Player, error)
	List(ctx context.Context) ([]player.Player, error)
	Create(ctx context.Context, p player.Player) error
	// SaveWithRevision stores p only when the stored revision equals expected.
	// p.Revision must already hold the next revision.
	SaveWithRevision(ctx context.Context, p player.Player, expected int64) error
}

type (
	InventoryRepository = Repository[inventory.Entry]
	AwardRepository     = Repository[achievement.Award]
	PetRepository       = Repository[player.Pet]
	WatermarkRepository = Repository[player.Watermark]
	QuestRepository     = Repository[quest.Quest]
	GiftRepository      = Repository[quest.DailyGift]
	ExchangerRepository = Repository[trade.Exchanger]
)

// MarketRepository also pages through every owner's listings, oldest first.
type MarketRepository interface {
	Repository[trade.Listing]
	List(ctx context.Context, offset, limit int) ([]trade.Listing, error)
}

// Stores groups the repositories one backend provides.
type Stores struct {
	Players    PlayerRepository
	Inventory  InventoryRepository
	Awards     AwardRepository
	Pets       PetRepository
	Watermarks WatermarkRepository
	Quests     QuestRepository
	Gifts      GiftRepository
	Exchangers ExchangerRepository
	Market     MarketRepository
	Tx         TxManager
}
