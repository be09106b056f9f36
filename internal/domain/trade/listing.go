package trade

import (
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

// Listing is a lot on the market: Quantity units of Item for Price coin in total.
type Listing struct {
	ID          string    `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	Item        string    `json:"item"`
	Quantity    int64     `json:"quantity"`
	Price       int64     `json:"price"`
	PublishedAt time.Time `json:"published_at"`
}

func (l Listing) RecordID() string   { return l.ID }
func (l Listing) RecordOwner() int64 { return l.OwnerID }

// Listable reports whether a stack of it can be put on the market.
func Listable(it items.Item) bool {
	return it.Kind == items.Countable && it.Tradeable && it.Name != items.CoinName
}
