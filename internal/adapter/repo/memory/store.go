package memory

import (
	"context"
	"sync"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/achievement"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
	"github.com/HamletSargsyan/livebot/internal/domain/quest"
	"github.com/HamletSargsyan/livebot/internal/domain/trade"
)

// Store keeps every collection in process memory behind one mutex.
type Store struct {
	mu      sync.Mutex
	players map[int64]player.Player
	order   []int64

	inventory  *Table[inventory.Entry]
	awards     *Table[achievement.Award]
	pets       *Table[player.Pet]
	watermarks *Table[player.Watermark]
	quests     *Table[quest.Quest]
	gifts      *Table[quest.DailyGift]
	exchangers *Table[trade.Exchanger]
	market     *Table[trade.Listing]
}

func NewStore() *Store {
	s := &Store{players: make(map[int64]player.Player)}
	s.inventory = newTable[inventory.Entry](s)
	s.awards = newTable[achievement.Award](s)
	s.pets = newTable[player.Pet](s)
	s.watermarks = newTable[player.Watermark](s)
	s.quests = newTable[quest.Quest](s)
	s.gifts = newTable[quest.DailyGift](s)
	s.exchangers = newTable[trade.Exchanger](s)
	s.market = newTable[trade.Listing](s)
	return s
}

// Stores wires every repository of this backend.
func (s *Store) Stores() ports.Stores {
	return ports.Stores{
		Players:    NewPlayerRepo(s),
		Inventory:  s.inventory,
		Awards:     s.awards,
		Pets:       s.pets,
		Watermarks: s.watermarks,
		Quests:     s.quests,
		Gifts:      s.gifts,
		Exchangers: s.exchangers,
		Market:     s.market,
		Tx:         NewTxManager(s),
	}
}

func (s *Store) SeedPlayer(p player.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.players[p.ID] = p.Clone()
}

// snapshot captures every collection so a failed transaction can be undone.
func (s *Store) snapshot() func() {
	players := make(map[int64]player.Player, len(s.players))
	for k, v := range s.players {
		players[k] = v
	}
	order := append([]int64(nil), s.order...)
	restores := []func(){
		s.inventory.snapshot(),
		s.awards.snapshot(),
		s.pets.snapshot(),
		s.watermarks.snapshot(),
		s.quests.snapshot(),
		s.gifts.snapshot(),
		s.exchangers.snapshot(),
		s.market.snapshot(),
	}
	return func() {
		s.players = players
		s.order = order
		for _, restore := range restores {
			restore()
		}
	}
}

type lockedKeyType struct{}

var lockedKey = lockedKeyType{}

func withLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, lockedKey, true)
}

// lock takes the store mutex unless ctx already runs inside RunInTx.
func (s *Store) lock(ctx context.Context) func() {
	if held, _ := ctx.Value(lockedKey).(bool); held {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
