// Package model holds the row structs the gorm repositories read and write.
package model

import "time"

const (
	TableNamePlayer        = "players"
	TableNameInventoryItem = "inventory_items"
	TableNameAward         = "achievement_awards"
	TableNamePet           = "pets"
	TableNameNotification  = "action_notifications"
	TableNameQuest         = "quests"
	TableNameDailyGift     = "daily_gifts"
	TableNameExchanger     = "exchangers"
	TableNameListing       = "market_listings"
)

// Player mapped from table <players>. JSON columns are kept as raw text.
type Player struct {
	ID                  int64     `gorm:"column:id;primaryKey" json:"id"`
	Name                string    `gorm:"column:name;not null" json:"name"`
	RegisteredAt        time.Time `gorm:"column:registered_at;not null" json:"registered_at"`
	Health              int64     `gorm:"column:health;not null" json:"health"`
	Mood                int64     `gorm:"column:mood;not null" json:"mood"`
	Hunger              int64     `gorm:"column:hunger;not null" json:"hunger"`
	Fatigue             int64     `gorm:"column:fatigue;not null" json:"fatigue"`
	Level               int64     `gorm:"column:level;not null" json:"level"`
	Xp                  float64   `gorm:"column:xp;not null" json:"xp"`
	MaxXp               float64   `gorm:"column:max_xp;not null" json:"max_xp"`
	Coin                int64     `gorm:"column:coin;not null" json:"coin"`
	Luck                int64     `gorm:"column:luck;not null" json:"luck"`
	Action              *string   `gorm:"column:action;type:jsonb" json:"action"`
	MetEncounter        bool      `gorm:"column:met_encounter;not null" json:"met_encounter"`
	Encounter           *string   `gorm:"column:encounter;type:jsonb" json:"encounter"`
	AchievementProgress string    `gorm:"column:achievement_progress;type:jsonb;not null" json:"achievement_progress"`
	Violations          string    `gorm:"column:violations;type:jsonb;not null" json:"violations"`
	CasinoWin           int64     `gorm:"column:casino_win;not null" json:"casino_win"`
	CasinoLoss          int64     `gorm:"column:casino_loss;not null" json:"casino_loss"`
	QuestFee            int64     `gorm:"column:quest_fee;not null" json:"quest_fee"`
	MarketSlots         int64     `gorm:"column:market_slots;not null" json:"market_slots"`
	PendingUpgrades     int64     `gorm:"column:pending_upgrades;not null" json:"pending_upgrades"`
	Revision            int64     `gorm:"column:revision;not null" json:"revision"`
}

func (*Player) TableName() string { return TableNamePlayer }

// InventoryItem mapped from table <inventory_items>
type InventoryItem struct {
	Seq       int64   `gorm:"column:seq;->" json:"seq"`
	ID        string  `gorm:"column:id;primaryKey" json:"id"`
	OwnerID   int64   `gorm:"column:owner_id;not null" json:"owner_id"`
	Name      string  `gorm:"column:name;not null" json:"name"`
	Kind      string  `gorm:"column:kind;not null" json:"kind"`
	Quantity  int64   `gorm:"column:quantity;not null" json:"quantity"`
	Condition float64 `gorm:"column:condition;not null" json:"condition"`
}

func (*InventoryItem) TableName() string { return TableNameInventoryItem }

// Award mapped from table <achievement_awards>
type Award struct {
	Seq       int64     `gorm:"column:seq;->" json:"seq"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	Key       string    `gorm:"column:key;not null" json:"key"`
	AwardedAt time.Time `gorm:"column:awarded_at;not null" json:"awarded_at"`
}

func (*Award) TableName() string { return TableNameAward }

// Pet mapped from table <pets>
type Pet struct {
	Seq     int64   `gorm:"column:seq;->" json:"seq"`
	ID      string  `gorm:"column:id;primaryKey" json:"id"`
	OwnerID int64   `gorm:"column:owner_id;not null" json:"owner_id"`
	Name    string  `gorm:"column:name;not null" json:"name"`
	Level   int64   `gorm:"column:level;not null" json:"level"`
	Xp      float64 `gorm:"column:xp;not null" json:"xp"`
	MaxXp   float64 `gorm:"column:max_xp;not null" json:"max_xp"`
	Health  int64   `gorm:"column:health;not null" json:"health"`
	Mood    int64   `gorm:"column:mood;not null" json:"mood"`
	Hunger  int64   `gorm:"column:hunger;not null" json:"hunger"`
	Fatigue int64   `gorm:"column:fatigue;not null" json:"fatigue"`
}

func (*Pet) TableName() string { return TableNamePet }

// Notification mapped from table <action_notifications>
type Notification struct {
	Seq        int64     `gorm:"column:seq;->" json:"seq"`
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerID    int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	ActionID   string    `gorm:"column:action_id;not null" json:"action_id"`
	NotifiedAt time.Time `gorm:"column:notified_at;not null" json:"notified_at"`
}

func (*Notification) TableName() string { return TableNameNotification }

// Quest mapped from table <quests>
type Quest struct {
	Seq       int64     `gorm:"column:seq;->" json:"seq"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	Item      string    `gorm:"column:item;not null" json:"item"`
	Quantity  int64     `gorm:"column:quantity;not null" json:"quantity"`
	Xp        float64   `gorm:"column:xp;not null" json:"xp"`
	Reward    int64     `gorm:"column:reward;not null" json:"reward"`
	StartedAt time.Time `gorm:"column:started_at;not null" json:"started_at"`
}

func (*Quest) TableName() string { return TableNameQuest }

// DailyGift mapped from table <daily_gifts>
type DailyGift struct {
	Seq             int64     `gorm:"column:seq;->" json:"seq"`
	ID              string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerID         int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	Items           string    `gorm:"column:items;type:jsonb;not null" json:"items"`
	Claimed         bool      `gorm:"column:claimed;not null" json:"claimed"`
	NextClaimableAt time.Time `gorm:"column:next_claimable_at;not null" json:"next_claimable_at"`
}

func (*DailyGift) TableName() string { return TableNameDailyGift }

// Exchanger mapped from table <exchangers>
type Exchanger struct {
	Seq       int64     `gorm:"column:seq;->" json:"seq"`
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	Item      string    `gorm:"column:item;not null" json:"item"`
	Price     int64     `gorm:"column:price;not null" json:"price"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
}

func (*Exchanger) TableName() string { return TableNameExchanger }

// Listing mapped from table <market_listings>
type Listing struct {
	Seq         int64     `gorm:"column:seq;->" json:"seq"`
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	OwnerID     int64     `gorm:"column:owner_id;not null" json:"owner_id"`
	Item        string    `gorm:"column:item;not null" json:"item"`
	Quantity    int64     `gorm:"column:quantity;not null" json:"quantity"`
	Price       int64     `gorm:"column:price;not null" json:"price"`
	PublishedAt time.Time `gorm:"column:published_at;not null" json:"published_at"`
}

func (*Listing) TableName() string { return TableNameListing }
