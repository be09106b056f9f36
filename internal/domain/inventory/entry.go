package inventory

import "github.com/HamletSargsyan/livebot/internal/domain/items"

const FullCondition = 100.0

// Entry is one owned item instance. Countable entries carry Quantity,
// usable entries carry Condition and always count as a single unit.
type Entry struct {
	ID        string          `json:"id"`
	OwnerID   int64           `json:"owner_id"`
	Name      string          `json:"name"`
	Kind      items.StackKind `json:"kind"`
	Quantity  int64           `json:"quantity"`
	Condition float64         `json:"condition,omitempty"`
}

func (e Entry) RecordID() string   { return e.ID }
func (e Entry) RecordOwner() int64 { return e.OwnerID }

func NewCountable(id string, owner int64, name string, qty int64) Entry {
	return Entry{ID: id, OwnerID: owner, Name: name, Kind: items.Countable, Quantity: qty}
}

func NewUsable(id string, owner int64, name string, condition float64) Entry {
	return Entry{ID: id, OwnerID: owner, Name: name, Kind: items.Usable, Quantity: 1, Condition: clampCondition(condition)}
}

// Units is how many of the item this entry represents.
func (e Entry) Units() int64 {
	if e.Kind == items.Usable {
		return 1
	}
	return e.Quantity
}

// Empty reports whether the entry should be removed from storage.
func (e Entry) Empty() bool {
	if e.Kind == items.Usable {
		return e.Condition <= 0
	}
	return e.Quantity <= 0
}

// Wear lowers the condition of a usable entry.
func (e *Entry) Wear(amount float64) {
	if e.Kind != items.Usable {
		return
	}
	e.Condition = clampCondition(e.Condition - amount)
}

func clampCondition(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > FullCondition {
		return FullCondition
	}
	return c
}
