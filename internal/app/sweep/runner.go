package sweep

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultDriftInterval  = time.Hour
	DefaultNotifyInterval = 5 * time.Second
)

type Pass interface {
	Name() string
	RunOnce(ctx context.Context) error
}

// Runner repeats a pass on a ticker until ctx is done.
type Runner struct {
	Logger *slog.Logger
	// Once runs a single pass and returns its error.
	Once bool
}

func (r Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r Runner) Run(ctx context.Context, interval time.Duration, pass Pass) error {
	log := r.logger().With("sweep", pass.Name())
	if r.Once {
		if err := pass.RunOnce(ctx); err != nil {
			return err
		}
		log.Info("sweep run-once completed")
		return nil
	}

	r.tick(ctx, log, pass)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("sweep started", "every", interval.String())
	for {
		select {
		case <-ctx.Done():
			log.Info("sweep shutdown")
			return nil
		case <-ticker.C:
			r.tick(ctx, log, pass)
		}
	}
}

func (r Runner) tick(ctx context.Context, log *slog.Logger, pass Pass) {
	if err := pass.RunOnce(ctx); err != nil && ctx.Err() == nil {
		log.Error("sweep pass failed", "err", err)
	}
}
