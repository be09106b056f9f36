package ports

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrDeliveryFailed     = errors.New("delivery failed")
)
