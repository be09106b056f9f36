package inventory

import (
	"fmt"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
)

type InsufficientItemError struct {
	Item      string
	Required  int64
	Available int64
}

func (e *InsufficientItemError) Error() string {
	return fmt.Sprintf("insufficient %s: required %d, available %d", e.Item, e.Required, e.Available)
}

func (e *InsufficientItemError) Unwrap() error {
	return ports.ErrPreconditionFailed
}

type InvalidItemError struct {
	Item   string
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Item, e.Reason)
}

func (e *InvalidItemError) Unwrap() error {
	return ports.ErrInvalidOperation
}
