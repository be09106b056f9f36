// Package trade holds the records players sell items through: the personal
// exchanger offer and market listings.
package trade

import (
	"strconv"
	"time"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

const (
	ExchangerMinLevel = 5
	ExchangerLifetime = 24 * time.Hour
	exchangerIDPrefix = "exchanger-"
)

// Exchanger buys one item from its owner at a fixed unit price until it expires.
type Exchanger struct {
	OwnerID   int64     `json:"owner_id"`
	Item      string    `json:"item"`
	Price     int64     `json:"price"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e Exchanger) RecordID() string   { return ExchangerID(e.OwnerID) }
func (e Exchanger) RecordOwner() int64 { return e.OwnerID }

func ExchangerID(owner int64) string {
	return exchangerIDPrefix + strconv.FormatInt(owner, 10)
}

func (e Exchanger) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Exchangeable reports whether the exchanger may ever ask for it.
func Exchangeable(it items.Item) bool {
	return it.Kind == items.Countable && it.Exchange.Max > 0
}

// NewExchanger picks an exchangeable item and rolls its unit price.
func NewExchanger(r items.Rand, owner int64, now time.Time) Exchanger {
	pool := items.Filter(Exchangeable)
	it := pool[r.IntN(len(pool))]
	return Exchanger{
		OwnerID:   owner,
		Item:      it.Name,
		Price:     it.Exchange.Roll(r),
		ExpiresAt: now.Add(ExchangerLifetime),
	}
}
