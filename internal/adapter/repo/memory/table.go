package memory

import (
	"context"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
)

// Table is the in-memory generic repository. GetAll keeps insertion order.
type Table[T ports.Record] struct {
	store *Store
	rows  map[string]T
	order []string
}

func newTable[T ports.Record](store *Store) *Table[T] {
	return &Table[T]{store: store, rows: make(map[string]T)}
}

func (t *Table[T]) Get(ctx context.Context, id string) (T, error) {
	defer t.store.lock(ctx)()
	rec, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, ports.ErrNotFound
	}
	return rec, nil
}

func (t *Table[T]) GetAll(ctx context.Context, owner int64) ([]T, error) {
	defer t.store.lock(ctx)()
	out := make([]T, 0)
	for _, id := range t.order {
		if rec := t.rows[id]; rec.RecordOwner() == owner {
			out = append(out, rec)
		}
	}
	return out, nil
}

// List pages through the records of every owner in insertion order.
func (t *Table[T]) List(ctx context.Context, offset, limit int) ([]T, error) {
	defer t.store.lock(ctx)()
	out := make([]T, 0)
	for i, id := range t.order {
		if i < offset {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, t.rows[id])
	}
	return out, nil
}

func (t *Table[T]) Add(ctx context.Context, rec T) error {
	defer t.store.lock(ctx)()
	id := rec.RecordID()
	if _, ok := t.rows[id]; ok {
		return ports.ErrConflict
	}
	t.rows[id] = rec
	t.order = append(t.order, id)
	return nil
}

func (t *Table[T]) Update(ctx context.Context, rec T) error {
	defer t.store.lock(ctx)()
	id := rec.RecordID()
	if _, ok := t.rows[id]; !ok {
		return ports.ErrNotFound
	}
	t.rows[id] = rec
	return nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	defer t.store.lock(ctx)()
	if _, ok := t.rows[id]; !ok {
		return ports.ErrNotFound
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

func (t *Table[T]) snapshot() func() {
	rows := make(map[string]T, len(t.rows))
	for k, v := range t.rows {
		rows[k] = v
	}
	order := append([]string(nil), t.order...)
	return func() {
		t.rows = rows
		t.order = order
	}
}
