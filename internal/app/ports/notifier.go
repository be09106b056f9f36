package ports

import "context"

// Notifier delivers a plain text message to a player's chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

type NotifierFunc func(ctx context.Context, chatID int64, text string) error

func (f NotifierFunc) Notify(ctx context.Context, chatID int64, text string) error {
	return f(ctx, chatID, text)
}
