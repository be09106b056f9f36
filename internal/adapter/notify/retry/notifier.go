package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
)

const (
	DefaultAttempts        = 5
	DefaultInitialInterval = 200 * time.Millisecond
	DefaultMaxInterval     = 5 * time.Second
)

// Notifier retries a flaky Notifier with exponential backoff and reports
// ErrDeliveryFailed once the attempts are used up.
type Notifier struct {
	Next            ports.Notifier
	Attempts        uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// Permanent marks errors that retrying cannot fix, such as a blocked chat.
	Permanent func(error) bool
	Logger    *slog.Logger
}

func (n Notifier) logger() *slog.Logger {
	if n.Logger == nil {
		return slog.Default()
	}
	return n.Logger
}

func (n Notifier) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = DefaultInitialInterval
	if n.InitialInterval > 0 {
		b.InitialInterval = n.InitialInterval
	}
	b.MaxInterval = DefaultMaxInterval
	if n.MaxInterval > 0 {
		b.MaxInterval = n.MaxInterval
	}
	return b
}

func (n Notifier) Notify(ctx context.Context, chatID int64, text string) error {
	attempts := n.Attempts
	if attempts == 0 {
		attempts = DefaultAttempts
	}
	tries := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		tries++
		err := n.Next.Notify(ctx, chatID, text)
		if err != nil && n.Permanent != nil && n.Permanent(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}, backoff.WithBackOff(n.backOff()), backoff.WithMaxTries(attempts))
	if err == nil {
		return nil
	}
	n.logger().Warn("message not delivered", "chat_id", chatID, "tries", tries, "err", err)
	return fmt.Errorf("%w: %w", ports.ErrDeliveryFailed, err)
}
