package inventory

import (
	"testing"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

func TestEntry_UnitsAndEmpty(t *testing.T) {
	c := NewCountable("c", 1, "bread", 3)
	if c.Units() != 3 || c.Empty() {
		t.Fatalf("unexpected countable state: %+v", c)
	}
	c.Quantity = 0
	if !c.Empty() {
		t.Fatalf("countable at 0 must be empty")
	}

	u := NewUsable("u", 1, "umbrella", 140)
	if u.Condition != FullCondition {
		t.Fatalf("condition must clamp to 100, got %v", u.Condition)
	}
	if u.Units() != 1 || u.Kind != items.Usable {
		t.Fatalf("usable must be a single unit: %+v", u)
	}
}

func TestEntry_WearRemovesWhenUsedUp(t *testing.T) {
	u := NewUsable("u", 1, "umbrella", 5)
	u.Wear(3)
	if u.Empty() || u.Condition != 2 {
		t.Fatalf("unexpected condition after wear: %v", u.Condition)
	}
	u.Wear(10)
	if !u.Empty() || u.Condition != 0 {
		t.Fatalf("expected used up, got %v", u.Condition)
	}

	c := NewCountable("c", 1, "bread", 2)
	c.Wear(50)
	if c.Quantity != 2 {
		t.Fatalf("wear must not touch countable entries")
	}
}
