package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	gormrepo "github.com/HamletSargsyan/livebot/internal/adapter/repo/gorm"
	"github.com/HamletSargsyan/livebot/internal/app/status"
	"github.com/HamletSargsyan/livebot/internal/app/sweep"
	"github.com/HamletSargsyan/livebot/internal/config"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run both sweeps",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := newRuntime(ctx)
			if err != nil {
				return err
			}

			s := server.Default(server.WithHostPorts(rt.cfg.HTTPAddr))
			rt.app.Handler.RegisterRoutes(s)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				rt.logger.Info("livebot listening", "addr", rt.cfg.HTTPAddr, "storage", rt.cfg.Storage)
				return s.Run()
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return s.Shutdown(shutdownCtx)
			})
			runSweeps(gctx, g, rt, false)
			return g.Wait()
		},
	}
}

func newWorkerCmd() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the drift and notification sweeps without the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			g, gctx := errgroup.WithContext(cmd.Context())
			runSweeps(gctx, g, rt, once || rt.cfg.RunOnce)
			return g.Wait()
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run each sweep a single time and exit")
	return cmd
}

func runSweeps(ctx context.Context, g *errgroup.Group, rt *runtime, once bool) {
	runner := sweep.Runner{Logger: rt.logger, Once: once}
	g.Go(func() error { return runner.Run(ctx, rt.cfg.DriftInterval, rt.app.Drift) })
	g.Go(func() error { return runner.Run(ctx, rt.cfg.NotifyInterval, rt.app.Notifications) })
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Storage != config.StoragePostgres {
				return errors.New("migrate needs LIVEBOT_STORAGE=postgres")
			}
			db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			return migrate(cmd.Context(), cfg, db, logger)
		},
	}
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Inspect players",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a player's vitals, progress and inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("player id %q: %w", args[0], err)
			}
			rt, err := newRuntime(cmd.Context())
			if err != nil {
				return err
			}
			view, err := rt.app.Status.Execute(cmd.Context(), status.Request{PlayerID: id})
			if err != nil {
				return err
			}
			renderPlayer(cmd.OutOrStdout(), view)
			return nil
		},
	})
	return cmd
}
