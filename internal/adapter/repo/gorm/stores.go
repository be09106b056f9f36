package gormrepo

import (
	"github.com/HamletSargsyan/livebot/internal/app/ports"

	"gorm.io/gorm"
)

// Stores wires every repository to db.
func Stores(db *gorm.DB) ports.Stores {
	return ports.Stores{
		Players:    NewPlayerRepo(db),
		Inventory:  NewTable(db, entryToRow, entryFromRow),
		Awards:     NewTable(db, awardToRow, awardFromRow),
		Pets:       NewTable(db, petToRow, petFromRow),
		Watermarks: NewTable(db, watermarkToRow, watermarkFromRow),
		Quests:     NewTable(db, questToRow, questFromRow),
		Gifts:      NewTable(db, giftToRow, giftFromRow),
		Exchangers: NewTable(db, exchangerToRow, exchangerFromRow),
		Market:     NewTable(db, listingToRow, listingFromRow),
		Tx:         NewTxManager(db),
	}
}
