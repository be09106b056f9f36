package inventory

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

func newService() Service {
	n := 0
	return Service{
		Repo: memory.NewStore().Stores().Inventory,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func TestAddByName_CountableMerges(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if err := s.AddByName(ctx, 1, "bread", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddByName(ctx, 1, "loaf", 3); err != nil {
		t.Fatalf("add alt name: %v", err)
	}

	found, _ := s.Find(ctx, 1, "bread", 0)
	if len(found) != 1 || found[0].Quantity != 5 {
		t.Fatalf("expected a single stack of 5, got %+v", found)
	}
}

func TestAddByName_UsableNeverMerges(t *testing.T) {
	ctx := context.Background()
	s := newService()

	_ = s.AddByName(ctx, 1, "umbrella", 2)
	fresh, err := s.GetOrAdd(ctx, 1, "umbrella")
	if err != nil {
		t.Fatalf("get or add usable: %v", err)
	}
	if fresh.Condition != 0 || fresh.Kind != items.Usable {
		t.Fatalf("expected new zero-condition unit, got %+v", fresh)
	}
	if _, err := s.Repo.Get(ctx, fresh.ID); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("zero-condition unit must not be stored, got %v", err)
	}
	found, _ := s.Find(ctx, 1, "umbrella", 0)
	if len(found) != 2 {
		t.Fatalf("expected 2 separate units, got %d", len(found))
	}
	for _, e := range found {
		if e.Condition <= 0 {
			t.Fatalf("broken unit held: %+v", e)
		}
	}
	limited, _ := s.Find(ctx, 1, "umbrella", 1)
	if len(limited) != 1 {
		t.Fatalf("limit ignored: %d", len(limited))
	}
}

func TestCoinIsNotAnItem(t *testing.T) {
	ctx := context.Background()
	s := newService()

	if _, err := s.GetOrAdd(ctx, 1, items.CoinName); !errors.Is(err, ports.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
	if err := s.AddByName(ctx, 1, items.CoinName, 10); !errors.Is(err, ports.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
}

func TestFindOne_NotFound(t *testing.T) {
	s := newService()
	if _, err := s.FindOne(context.Background(), 1, "bread"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.FindOne(context.Background(), 1, "unicorn"); !errors.Is(err, items.ErrUnknownItem) {
		t.Fatalf("expected unknown item, got %v", err)
	}
}

func TestRemove_DeletesAtZeroAndRejectsOverdraw(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_ = s.AddByName(ctx, 1, "water", 3)
	e, _ := s.FindOne(ctx, 1, "water")

	var insufficient *InsufficientItemError
	if err := s.Remove(ctx, e, 4); !errors.As(err, &insufficient) || insufficient.Available != 3 {
		t.Fatalf("expected insufficient error, got %v", err)
	}
	if !errors.Is(insufficient, ports.ErrPreconditionFailed) {
		t.Fatalf("insufficient must be a precondition failure")
	}
	if err := s.Remove(ctx, e, 3); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := s.FindOne(ctx, 1, "water"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("entry must be removed at 0, got %v", err)
	}
}

func TestStackKindRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newService()

	_ = s.AddByName(ctx, 1, "bread", 4)
	_ = s.AddByName(ctx, 1, "umbrella", 1)

	all, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	kinds := map[string]items.StackKind{}
	for _, e := range all {
		kinds[e.Name] = e.Kind
	}
	if kinds["bread"] != items.Countable || kinds["umbrella"] != items.Usable {
		t.Fatalf("kinds changed on reload: %+v", kinds)
	}

	if err := s.RemoveByName(ctx, 1, "bread", 4); err != nil {
		t.Fatalf("remove bread: %v", err)
	}
	if err := s.RemoveByName(ctx, 1, "umbrella", 1); err != nil {
		t.Fatalf("remove umbrella: %v", err)
	}
	if all, _ := s.List(ctx, 1); len(all) != 0 {
		t.Fatalf("expected empty inventory, got %+v", all)
	}
}

func TestWear_RemovesUsedUpUnit(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_ = s.AddByName(ctx, 1, "umbrella", 1)
	u, _ := s.FindOne(ctx, 1, "umbrella")

	u, err := s.Wear(ctx, u, 60)
	if err != nil || u.Condition != 40 {
		t.Fatalf("unexpected wear result: %+v %v", u, err)
	}
	if _, err := s.Wear(ctx, u, 60); err != nil {
		t.Fatalf("wear: %v", err)
	}
	if n, _ := s.Count(ctx, 1, "umbrella"); n != 0 {
		t.Fatalf("used up umbrella must be removed, count=%d", n)
	}
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_ = s.AddByName(ctx, 1, "bread", 5)
	_ = s.AddByName(ctx, 1, "umbrella", 1)
	_ = s.AddByName(ctx, 2, "bread", 1)

	bread, _ := s.FindOne(ctx, 1, "bread")
	if err := s.Transfer(ctx, bread, 2, 3); err != nil {
		t.Fatalf("transfer bread: %v", err)
	}
	if n, _ := s.Count(ctx, 1, "bread"); n != 2 {
		t.Fatalf("source bread: %d", n)
	}
	if n, _ := s.Count(ctx, 2, "bread"); n != 4 {
		t.Fatalf("destination bread: %d", n)
	}

	umbrella, _ := s.FindOne(ctx, 1, "umbrella")
	worn, _ := s.Wear(ctx, umbrella, 30)
	if err := s.Transfer(ctx, worn, 2, 1); err != nil {
		t.Fatalf("transfer umbrella: %v", err)
	}
	got, _ := s.FindOne(ctx, 2, "umbrella")
	if got.ID != umbrella.ID || got.Condition != 70 {
		t.Fatalf("usable must move as-is: %+v", got)
	}

	pill := items.MustLookup("pill")
	_ = s.AddByName(ctx, 1, pill.Name, 1)
	pe, _ := s.FindOne(ctx, 1, pill.Name)
	if err := s.Transfer(ctx, pe, 2, 1); !errors.Is(err, ports.ErrInvalidOperation) {
		t.Fatalf("expected non-tradeable rejection, got %v", err)
	}
}

func TestCraft_InsufficientLeavesInventoryUntouched(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_ = s.AddByName(ctx, 1, "grass", 7)
	_ = s.AddByName(ctx, 1, "umbrella", 1)
	before, _ := s.List(ctx, 1)

	p := player.New(1, "p", time.Unix(0, 0))
	_, err := s.Craft(ctx, rand.New(rand.NewPCG(1, 2)), &p, "sandwich", 1)

	var insufficient *InsufficientItemError
	if !errors.As(err, &insufficient) || insufficient.Item != "bread" || insufficient.Available != 0 {
		t.Fatalf("expected missing bread, got %v", err)
	}
	after, _ := s.List(ctx, 1)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("inventory changed on rejected craft:\nbefore=%+v\nafter=%+v", before, after)
	}
	if p.Progress.XP != 0 {
		t.Fatalf("xp granted on rejected craft")
	}
}

func TestCraft_ConsumesAndMultiplies(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_ = s.AddByName(ctx, 1, "grass", 7)
	_ = s.AddByName(ctx, 1, "water", 2)

	p := player.New(1, "p", time.Unix(0, 0))
	res, err := s.Craft(ctx, rand.New(rand.NewPCG(3, 4)), &p, "bread", 2)
	if err != nil {
		t.Fatalf("craft: %v", err)
	}
	if res.Quantity != 2 {
		t.Fatalf("expected 2 bread, got %d", res.Quantity)
	}
	if n, _ := s.Count(ctx, 1, "bread"); n != 2 {
		t.Fatalf("bread count: %d", n)
	}
	if n, _ := s.Count(ctx, 1, "grass"); n != 1 {
		t.Fatalf("grass left: %d", n)
	}
	if _, err := s.FindOne(ctx, 1, "water"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("water must be used up")
	}
	if res.XP < 2 || res.XP > 6 || p.Progress.XP != res.XP {
		t.Fatalf("unexpected craft xp: %v (player %v)", res.XP, p.Progress.XP)
	}
}

func TestAvailableCrafts(t *testing.T) {
	ctx := context.Background()
	s := newService()
	_ = s.AddByName(ctx, 1, "water", 10)
	_ = s.AddByName(ctx, 1, "mushroom", 2)
	_ = s.AddByName(ctx, 1, "grass", 3)

	opts, err := s.AvailableCrafts(ctx, 1)
	if err != nil {
		t.Fatalf("available crafts: %v", err)
	}
	got := map[string]bool{}
	for _, o := range opts {
		got[o.Item] = true
	}
	for _, want := range []string{"bread", "soup", "bone"} {
		if !got[want] {
			t.Fatalf("expected %s craftable, got %+v", want, opts)
		}
	}
	if got["pizza"] || got["sandwich"] {
		t.Fatalf("recipes needing bread must not be offered: %+v", opts)
	}
	if opts[0].Item == "bone" {
		t.Fatalf("recipes using the 10 water stack must sort first")
	}
}
