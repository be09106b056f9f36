package memory

import (
	"context"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

type PlayerRepo struct {
	store *Store
}

func NewPlayerRepo(store *Store) PlayerRepo {
	return PlayerRepo{store: store}
}

func (r PlayerRepo) Get(ctx context.Context, id int64) (player.Player, error) {
	defer r.store.lock(ctx)()
	p, ok := r.store.players[id]
	if !ok {
		return player.Player{}, ports.ErrNotFound
	}
	return p.Clone(), nil
}

func (r PlayerRepo) List(ctx context.Context) ([]player.Player, error) {
	defer r.store.lock(ctx)()
	out := make([]player.Player, 0, len(r.store.order))
	for _, id := range r.store.order {
		out = append(out, r.store.players[id].Clone())
	}
	return out, nil
}

func (r PlayerRepo) Create(ctx context.Context, p player.Player) error {
	defer r.store.lock(ctx)()
	if _, ok := r.store.players[p.ID]; ok {
		return ports.ErrConflict
	}
	r.store.players[p.ID] = p.Clone()
	r.store.order = append(r.store.order, p.ID)
	return nil
}

func (r PlayerRepo) SaveWithRevision(ctx context.Context, p player.Player, expected int64) error {
	defer r.store.lock(ctx)()
	current, ok := r.store.players[p.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Revision != expected {
		return ports.ErrConflict
	}
	r.store.players[p.ID] = p.Clone()
	return nil
}
