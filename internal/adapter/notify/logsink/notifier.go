package logsink

import (
	"context"
	"log/slog"
)

// Notifier writes messages to the log instead of a chat. It is the
// fallback when no bot token is configured.
type Notifier struct {
	Logger *slog.Logger
}

func (n Notifier) Notify(ctx context.Context, chatID int64, text string) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notify", "chat_id", chatID, "text", text)
	return nil
}
