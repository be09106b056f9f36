package achievement

import (
	"testing"

	"github.com/HamletSargsyan/livebot/internal/domain/items"
)

func TestCatalog_RewardsAreKnownItems(t *testing.T) {
	for _, d := range All() {
		if d.Goal <= 0 {
			t.Fatalf("%s: goal must be positive", d.Key)
		}
		for name, qty := range d.Reward {
			if _, err := items.Lookup(name); err != nil {
				t.Fatalf("%s: unknown reward item %q", d.Key, name)
			}
			if qty <= 0 {
				t.Fatalf("%s: non-positive reward for %q", d.Key, name)
			}
		}
	}
}

func TestIncrement_FrozenOnceAwarded(t *testing.T) {
	progress := map[string]int64{}

	if !Increment(progress, "worker", 6, false) {
		t.Fatalf("expected first increment to apply")
	}
	if Increment(progress, "worker", 6, true) {
		t.Fatalf("expected increment after award to be dropped")
	}
	if progress["worker"] != 6 {
		t.Fatalf("expected frozen progress 6, got %d", progress["worker"])
	}
}

func TestIncrement_IgnoresNonPositiveAmount(t *testing.T) {
	progress := map[string]int64{}
	if Increment(progress, "gamer", 0, false) {
		t.Fatalf("zero amount must not create the key")
	}
	if _, ok := progress["gamer"]; ok {
		t.Fatalf("key must be present only once progress > 0")
	}
}

func TestDefinition_ReachedAndPercent(t *testing.T) {
	d, ok := Lookup("worker")
	if !ok {
		t.Fatalf("worker achievement missing")
	}
	progress := map[string]int64{"worker": 5}
	if d.Reached(progress) {
		t.Fatalf("5/10 must not be reached")
	}
	if got := d.Percent(progress); got != 50 {
		t.Fatalf("expected 50%%, got %v", got)
	}
	progress["worker"] = 12
	if !d.Reached(progress) || d.Percent(progress) != 100 {
		t.Fatalf("12/10 must be reached at 100%%")
	}
}
