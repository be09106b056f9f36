package encounter

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/inventory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/app/progression"
	"github.com/HamletSargsyan/livebot/internal/app/txretry"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var at = time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

func setup(enc *player.Encounter, coin int64) (UseCase, ports.Stores, inventory.Service) {
	store := memory.NewStore()
	repos := store.Stores()
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	inv := inventory.Service{Repo: repos.Inventory, NewID: newID}
	p := player.New(9, "walker", at)
	p.Coin = coin
	p.MetEncounter = enc != nil
	p.Encounter = enc
	store.SeedPlayer(p)
	return UseCase{
		TxManager: repos.Tx,
		Players:   repos.Players,
		Pets:      repos.Pets,
		Inventory: inv,
		Regulator: progression.Regulator{
			Players:   repos.Players,
			Pets:      repos.Pets,
			Inventory: inv,
			Tracker:   progression.Tracker{Awards: repos.Awards, Inventory: inv, NewID: newID},
		},
		Rand:  rand.New(rand.NewPCG(1, 1)),
		NewID: newID,
		Retry: txretry.Policy{Delay: time.Millisecond},
	}, repos, inv
}

func TestResolve_DogBecomesPetForBones(t *testing.T) {
	ctx := context.Background()
	uc, repos, inv := setup(&player.Encounter{Kind: player.EncounterDog, Item: "bone", Quantity: 4, At: at}, 0)
	_ = inv.AddByName(ctx, 9, "bone", 5)

	res, err := uc.Resolve(ctx, Request{PlayerID: 9, Accept: true, PetName: "Rex"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Pet == nil || res.Pet.Name != "Rex" {
		t.Fatalf("expected a pet, got %+v", res)
	}
	pets, _ := repos.Pets.GetAll(ctx, 9)
	if len(pets) != 1 {
		t.Fatalf("pet not stored")
	}
	if n, _ := inv.Count(ctx, 9, "bone"); n != 1 {
		t.Fatalf("bones not paid: %d left", n)
	}
	if res.Player.Encounter != nil {
		t.Fatalf("encounter must be cleared")
	}
}

func TestResolve_DogWithoutBonesKeepsEncounter(t *testing.T) {
	ctx := context.Background()
	uc, repos, _ := setup(&player.Encounter{Kind: player.EncounterDog, Item: "bone", Quantity: 4, At: at}, 0)

	_, err := uc.Resolve(ctx, Request{PlayerID: 9, Accept: true})
	var insufficient *inventory.InsufficientItemError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected missing bones, got %v", err)
	}
	p, _ := repos.Players.Get(ctx, 9)
	if p.Encounter == nil {
		t.Fatalf("rejected answer must leave the encounter pending")
	}
}

func TestResolve_TraderSellsForCoin(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(&player.Encounter{Kind: player.EncounterTrader, Item: "grass", Quantity: 3, Price: 15, At: at}, 20)

	res, err := uc.Resolve(ctx, Request{PlayerID: 9, Accept: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Player.Coin != 5 {
		t.Fatalf("expected 5 coin left, got %d", res.Player.Coin)
	}
	if n, _ := inv.Count(ctx, 9, "grass"); n != 3 {
		t.Fatalf("goods not delivered: %d", n)
	}
}

func TestResolve_TraderNeedsCoin(t *testing.T) {
	uc, _, _ := setup(&player.Encounter{Kind: player.EncounterTrader, Item: "grass", Quantity: 3, Price: 15, At: at}, 10)
	if _, err := uc.Resolve(context.Background(), Request{PlayerID: 9, Accept: true}); !errors.Is(err, ports.ErrPreconditionFailed) {
		t.Fatalf("expected precondition failure, got %v", err)
	}
}

func TestResolve_ChestGrantsLoot(t *testing.T) {
	ctx := context.Background()
	uc, _, inv := setup(&player.Encounter{Kind: player.EncounterChest, At: at}, 0)

	res, err := uc.Resolve(ctx, Request{PlayerID: 9, Accept: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Coin < 5 || res.Player.Coin != res.Coin {
		t.Fatalf("chest coin not credited: %+v", res)
	}
	for _, g := range res.Gains {
		if n, _ := inv.Count(ctx, 9, g.Name); n < g.Quantity {
			t.Fatalf("%s not stored", g.Name)
		}
	}
}

func TestResolve_DeclineAndNothingPending(t *testing.T) {
	ctx := context.Background()
	uc, repos, _ := setup(&player.Encounter{Kind: player.EncounterChest, At: at}, 0)

	res, err := uc.Resolve(ctx, Request{PlayerID: 9, Accept: false})
	if err != nil || res.Accepted || res.Player.Coin != 0 {
		t.Fatalf("decline must only clear the encounter: %+v %v", res, err)
	}
	if p, _ := repos.Players.Get(ctx, 9); p.Encounter != nil {
		t.Fatalf("encounter not cleared")
	}
	if _, err := uc.Resolve(ctx, Request{PlayerID: 9, Accept: true}); !errors.Is(err, ErrNoEncounter) {
		t.Fatalf("expected no encounter, got %v", err)
	}
}
