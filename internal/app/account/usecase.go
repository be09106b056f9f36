package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var ErrInvalidRequest = fmt.Errorf("%w: invalid register request", ports.ErrInvalidOperation)

const maxNameLen = 64

type RegisterRequest struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	Player  player.Player `json:"player"`
	Created bool          `json:"created"`
}

// RegisterUseCase creates a player on first contact. Registering again
// returns the stored player untouched.
type RegisterUseCase struct {
	Players ports.PlayerRepository
	Now     func() time.Time
	Logger  *slog.Logger
}

func (u RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if req.PlayerID <= 0 {
		return RegisterResponse{}, ErrInvalidRequest
	}
	existing, err := u.Players.Get(ctx, req.PlayerID)
	if err == nil {
		return RegisterResponse{Player: existing}, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return RegisterResponse{}, err
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	p := player.New(req.PlayerID, CleanName(req.Name), nowFn().UTC())
	if err := u.Players.Create(ctx, p); err != nil {
		if errors.Is(err, ports.ErrConflict) {
			// lost a race with another first message from the same player
			existing, getErr := u.Players.Get(ctx, req.PlayerID)
			if getErr != nil {
				return RegisterResponse{}, getErr
			}
			return RegisterResponse{Player: existing}, nil
		}
		return RegisterResponse{}, err
	}
	log := u.Logger
	if log == nil {
		log = slog.Default()
	}
	log.InfoContext(ctx, "player registered", "player_id", p.ID, "name", p.Name)
	return RegisterResponse{Player: p, Created: true}, nil
}

// CleanName drops markup-sensitive characters from a display name.
func CleanName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`#<>{}"'$()@`, r) {
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if runes := []rune(cleaned); len(runes) > maxNameLen {
		cleaned = string(runes[:maxNameLen])
	}
	return cleaned
}
