// Package txretry reruns a whole transaction when its closing revision save
// loses to a concurrent writer.
package txretry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
)

const (
	DefaultMaxAttempts = 5
	DefaultDelay       = 25 * time.Millisecond
	DefaultMaxDelay    = time.Second
)

// Policy retries work failing with ports.ErrConflict, doubling the delay
// between attempts. Any other error ends it immediately.
type Policy struct {
	MaxAttempts uint
	Delay       time.Duration
	MaxDelay    time.Duration
	// OnConflict observes every conflicting attempt, the last one included.
	OnConflict func(attempt int)
	Logger     *slog.Logger
}

func (p Policy) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func (p Policy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = DefaultDelay
	if p.Delay > 0 {
		b.InitialInterval = p.Delay
	}
	b.MaxInterval = DefaultMaxDelay
	if p.MaxDelay > 0 {
		b.MaxInterval = p.MaxDelay
	}
	b.Multiplier = 2
	return b
}

// Do calls fn until it succeeds, fails with a non-conflict error or runs
// out of attempts. The last error is returned.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts == 0 {
		attempts = DefaultMaxAttempts
	}
	tries := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		tries++
		err := fn(ctx)
		if err == nil {
			return struct{}{}, nil
		}
		if !errors.Is(err, ports.ErrConflict) {
			return struct{}{}, backoff.Permanent(err)
		}
		if p.OnConflict != nil {
			p.OnConflict(tries)
		}
		p.logger().Debug("revision conflict", "attempt", tries, "err", err)
		return struct{}{}, err
	}, backoff.WithBackOff(p.backOff()), backoff.WithMaxTries(attempts))
	return err
}

// InTx runs fn inside a fresh transaction on every attempt.
func (p Policy) InTx(ctx context.Context, tx ports.TxManager, fn func(ctx context.Context) error) error {
	return p.Do(ctx, func(ctx context.Context) error {
		return tx.RunInTx(ctx, fn)
	})
}
