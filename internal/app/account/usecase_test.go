package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HamletSargsyan/livebot/internal/adapter/repo/memory"
	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type racingPlayers struct {
	ports.PlayerRepository
	winner player.Player
	store  *memory.Store
}

func (r racingPlayers) Create(ctx context.Context, p player.Player) error {
	r.store.SeedPlayer(r.winner)
	return ports.ErrConflict
}

func TestRegister_CreatesOnce(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	uc := RegisterUseCase{Players: store.Stores().Players, Now: func() time.Time { return now }}

	first, err := uc.Execute(ctx, RegisterRequest{PlayerID: 10, Name: " <b>Neo</b> "})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !first.Created || first.Player.Name != "bNeo/b" || first.Player.Progress.Level != 1 {
		t.Fatalf("unexpected first registration: %+v", first)
	}
	if !first.Player.RegisteredAt.Equal(now) {
		t.Fatalf("registered_at not stamped")
	}

	second, err := uc.Execute(ctx, RegisterRequest{PlayerID: 10, Name: "someone else"})
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if second.Created || second.Player.Name != "bNeo/b" {
		t.Fatalf("re-register must keep the stored player: %+v", second)
	}
}

func TestRegister_LostRaceReturnsWinner(t *testing.T) {
	store := memory.NewStore()
	winner := player.New(11, "first", now)
	uc := RegisterUseCase{Players: racingPlayers{PlayerRepository: store.Stores().Players, winner: winner, store: store}}

	res, err := uc.Execute(context.Background(), RegisterRequest{PlayerID: 11, Name: "second"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Created || res.Player.Name != "first" {
		t.Fatalf("expected the racing winner, got %+v", res)
	}
}

func TestRegister_RejectsBadID(t *testing.T) {
	uc := RegisterUseCase{Players: memory.NewStore().Stores().Players}
	if _, err := uc.Execute(context.Background(), RegisterRequest{PlayerID: 0}); !errors.Is(err, ports.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
}

func TestCleanName_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "я"
	}
	if got := []rune(CleanName(long)); len(got) != maxNameLen {
		t.Fatalf("expected %d runes, got %d", maxNameLen, len(got))
	}
}
