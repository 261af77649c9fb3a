// Command ingest is the ParkPulse operational CLI.
//
// Usage:
//
//	parkpulse-ingest refresh --park magic-kingdom
//	parkpulse-ingest refresh --all
//	parkpulse-ingest prune --days 90
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/parkpulse/parkpulse-data/internal/cache"
	"github.com/parkpulse/parkpulse-data/internal/config"
	"github.com/parkpulse/parkpulse-data/internal/db"
	"github.com/parkpulse/parkpulse-data/internal/history"
	"github.com/parkpulse/parkpulse-data/internal/parks"
	"github.com/parkpulse/parkpulse-data/internal/provider/themeparks"
	"github.com/parkpulse/parkpulse-data/internal/waits"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "parkpulse-ingest",
		Short: "ParkPulse operational CLI",
	}

	root.AddCommand(refreshCmd())
	root.AddCommand(pruneCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// refresh command
// --------------------------------------------------------------------------

func refreshCmd() *cobra.Command {
	var parkID string
	var all bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch live status, compute snapshots, and append history samples",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && parkID == "" {
				return fmt.Errorf("either --park or --all is required")
			}
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				targets := parks.AllParks()
				if !all {
					p, err := parks.ParkByID(parkID)
					if err != nil {
						return err
					}
					targets = []parks.Park{p}
				}

				provider := themeparks.NewClient(
					cfg.ProviderBaseURL, cfg.ProviderAPIKey,
					cfg.ProviderRequestsPerMin, cfg.ProviderTimeout, logger)

				var store history.Store
				if pool != nil {
					store = history.NewPostgresStore(pool.Pool)
				}

				// Synchronous recorder semantics do not exist; give the
				// fire-and-forget writes time to land before exit.
				recorder := history.NewRecorder(store, cfg.HistoryWriteTimeout, logger)
				svc := waits.NewService(waits.ServiceDeps{
					Provider: provider,
					Cache:    cache.New(false),
					Recorder: recorder,
					Logger:   logger,
				})

				start := time.Now()
				succeeded := 0
				for _, park := range targets {
					snap, _, err := svc.ParkWaits(ctx, park.ID)
					if err != nil {
						logger.Error("refresh failed", "park", park.ID, "error", err)
						continue
					}
					succeeded++
					logger.Info("park refreshed",
						"park", park.ID,
						"attractions", len(snap.Attractions),
						"avg_wait", snap.AverageWaitTime,
						"crowd_level", snap.CrowdLevel)
				}

				if store != nil {
					time.Sleep(cfg.HistoryWriteTimeout)
				}
				logger.Info("Refresh finished",
					"parks", len(targets),
					"succeeded", succeeded,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parkID, "park", "", "Canonical park ID")
	cmd.Flags().BoolVar(&all, "all", false, "Refresh every registered park")
	return cmd
}

// --------------------------------------------------------------------------
// prune command
// --------------------------------------------------------------------------

func pruneCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete history samples older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if pool == nil {
					return fmt.Errorf("prune requires the historical store; set DATABASE_URL")
				}
				cutoff := time.Now().AddDate(0, 0, -days)

				tag, err := pool.Exec(ctx, "prune_wait_samples", cutoff)
				if err != nil {
					return fmt.Errorf("prune wait samples: %w", err)
				}
				logger.Info("Pruned wait samples", "count", tag.RowsAffected(), "cutoff", cutoff)

				tag, err = pool.Exec(ctx, "prune_analytics_samples", cutoff)
				if err != nil {
					return fmt.Errorf("prune analytics samples: %w", err)
				}
				logger.Info("Pruned analytics samples", "count", tag.RowsAffected(), "cutoff", cutoff)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 90, "Retention window in days")
	return cmd
}

// --------------------------------------------------------------------------
// Shared runner
// --------------------------------------------------------------------------

// run loads config, connects to the historical store when configured, and
// invokes fn with signal-aware context. pool is nil when history is
// disabled.
func run(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var pool *db.Pool
	if cfg.HistoryEnabled {
		pool, err = db.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect historical store: %w", err)
		}
		defer pool.Close()
	}

	return fn(ctx, cfg, pool)
}
