package action

import (
	"fmt"
	"time"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

var ErrInvalidRequest = fmt.Errorf("%w: invalid action request", ports.ErrInvalidOperation)

// BusyError rejects starting one action type while another is running.
type BusyError struct {
	Current   player.ActionType
	Remaining time.Duration
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("busy with %s for another %s", e.Current, e.Remaining.Round(time.Minute))
}

func (e *BusyError) Unwrap() error {
	return ports.ErrPreconditionFailed
}

// PreconditionError carries the player rule that blocked the start.
type PreconditionError struct {
	Reason error
}

func (e *PreconditionError) Error() string {
	return "cannot start action: " + e.Reason.Error()
}

func (e *PreconditionError) Unwrap() []error {
	return []error{ports.ErrPreconditionFailed, e.Reason}
}
