package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/inventory"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

// Service owns every read and write of player item instances.
type Service struct {
	Repo  ports.InventoryRepository
	NewID ports.IDGenerator
}

func lookup(name string) (items.Item, error) {
	it, err := items.Lookup(name)
	if err != nil {
		return items.Item{}, fmt.Errorf("%w: %w", ports.ErrNotFound, err)
	}
	return it, nil
}

func storable(name string) (items.Item, error) {
	it, err := lookup(name)
	if err != nil {
		return items.Item{}, err
	}
	if it.Name == items.CoinName {
		return items.Item{}, &InvalidItemError{Item: it.Name, Reason: "coin is a balance, not an item"}
	}
	return it, nil
}

// Find returns up to limit entries holding the named item. limit <= 0 means all.
func (s Service) Find(ctx context.Context, owner int64, name string, limit int) ([]inventory.Entry, error) {
	it, err := lookup(name)
	if err != nil {
		return nil, err
	}
	all, err := s.Repo.GetAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]inventory.Entry, 0)
	for _, e := range all {
		if e.Name != it.Name {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s Service) FindOne(ctx context.Context, owner int64, name string) (inventory.Entry, error) {
	found, err := s.Find(ctx, owner, name, 1)
	if err != nil {
		return inventory.Entry{}, err
	}
	if len(found) == 0 {
		return inventory.Entry{}, ports.ErrNotFound
	}
	return found[0], nil
}

// Count sums the units of the named item the owner holds.
func (s Service) Count(ctx context.Context, owner int64, name string) (int64, error) {
	found, err := s.Find(ctx, owner, name, 0)
	if err != nil {
		return 0, err
	}
	var n int64
	for _, e := range found {
		n += e.Units()
	}
	return n, nil
}

func (s Service) List(ctx context.Context, owner int64) ([]inventory.Entry, error) {
	return s.Repo.GetAll(ctx, owner)
}

// GetOrAdd returns the countable entry for name, creating an empty one if
// needed. Usable items never merge: a fresh zero-condition unit is returned
// unsaved.
func (s Service) GetOrAdd(ctx context.Context, owner int64, name string) (inventory.Entry, error) {
	it, err := storable(name)
	if err != nil {
		return inventory.Entry{}, err
	}
	if it.Kind == items.Usable {
		return inventory.NewUsable(s.NewID(), owner, it.Name, 0), nil
	}
	e, err := s.FindOne(ctx, owner, it.Name)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return inventory.Entry{}, err
	}
	e = inventory.NewCountable(s.NewID(), owner, it.Name, 0)
	return e, s.Repo.Add(ctx, e)
}

// AddByName grants qty units. Countable items merge into one entry, usable
// items are created as qty separate units in full condition.
func (s Service) AddByName(ctx context.Context, owner int64, name string, qty int64) error {
	if qty <= 0 {
		return nil
	}
	it, err := storable(name)
	if err != nil {
		return err
	}
	if it.Kind == items.Usable {
		for i := int64(0); i < qty; i++ {
			if err := s.Repo.Add(ctx, inventory.NewUsable(s.NewID(), owner, it.Name, inventory.FullCondition)); err != nil {
				return err
			}
		}
		return nil
	}
	e, err := s.GetOrAdd(ctx, owner, it.Name)
	if err != nil {
		return err
	}
	e.Quantity += qty
	return s.Repo.Update(ctx, e)
}

// Remove takes qty units from a countable entry, deleting it at zero, or
// deletes a usable unit outright.
func (s Service) Remove(ctx context.Context, e inventory.Entry, qty int64) error {
	cur, err := s.Repo.Get(ctx, e.ID)
	if err != nil {
		return err
	}
	if cur.Kind == items.Usable {
		return s.Repo.Delete(ctx, cur.ID)
	}
	if qty <= 0 {
		return &InvalidItemError{Item: cur.Name, Reason: "quantity must be positive"}
	}
	if cur.Quantity < qty {
		return &InsufficientItemError{Item: cur.Name, Required: qty, Available: cur.Quantity}
	}
	cur.Quantity -= qty
	if cur.Empty() {
		return s.Repo.Delete(ctx, cur.ID)
	}
	return s.Repo.Update(ctx, cur)
}

func (s Service) RemoveByName(ctx context.Context, owner int64, name string, qty int64) error {
	it, err := storable(name)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return &InvalidItemError{Item: it.Name, Reason: "quantity must be positive"}
	}
	found, err := s.Find(ctx, owner, it.Name, 0)
	if err != nil {
		return err
	}
	var have int64
	for _, e := range found {
		have += e.Units()
	}
	if have < qty {
		return &InsufficientItemError{Item: it.Name, Required: qty, Available: have}
	}
	if it.Kind == items.Countable {
		return s.Remove(ctx, found[0], qty)
	}
	for _, e := range found[:qty] {
		if err := s.Repo.Delete(ctx, e.ID); err != nil {
			return err
		}
	}
	return nil
}

// Wear lowers the condition of a usable unit and removes it once used up.
func (s Service) Wear(ctx context.Context, e inventory.Entry, amount float64) (inventory.Entry, error) {
	cur, err := s.Repo.Get(ctx, e.ID)
	if err != nil {
		return inventory.Entry{}, err
	}
	if cur.Kind != items.Usable {
		return inventory.Entry{}, &InvalidItemError{Item: cur.Name, Reason: "only usable items wear out"}
	}
	cur.Wear(amount)
	if cur.Empty() {
		return cur, s.Repo.Delete(ctx, cur.ID)
	}
	return cur, s.Repo.Update(ctx, cur)
}

// Transfer moves an entry to another player. Usable units change owner as
// they are; countable stacks are split by qty and merged at the destination.
func (s Service) Transfer(ctx context.Context, e inventory.Entry, to int64, qty int64) error {
	cur, err := s.Repo.Get(ctx, e.ID)
	if err != nil {
		return err
	}
	it, err := storable(cur.Name)
	if err != nil {
		return err
	}
	if !it.Tradeable {
		return &InvalidItemError{Item: it.Name, Reason: "not tradeable"}
	}
	if cur.OwnerID == to {
		return &InvalidItemError{Item: it.Name, Reason: "already owned by the receiver"}
	}
	if cur.Kind == items.Usable {
		cur.OwnerID = to
		return s.Repo.Update(ctx, cur)
	}
	if err := s.Remove(ctx, cur, qty); err != nil {
		return err
	}
	return s.AddByName(ctx, to, cur.Name, qty)
}
