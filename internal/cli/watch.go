package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/avilov/zonesync/internal/workers"
)

// NewWatchCommand creates the watch command: periodic sync until interrupted.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically until interrupted",
		Long: `Run an immediate sync cycle, then keep syncing on the configured
interval (default 5m) until SIGINT or SIGTERM. Status transitions are printed
as they are observed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err = a.engine.EnsureZone(ctx); err != nil {
				return err
			}

			updates, cancel := a.facade.Subscribe()
			defer cancel()
			go func() {
				for status := range updates {
					fmt.Fprintln(cmd.OutOrStdout(), status)
				}
			}()

			job := workers.NewSyncJob(a.facade, a.log)
			defer job.Stop()
			workers.NewWorkers(
				workers.NewSyncWorker(ctx, job, a.cfg.Sync.Interval),
			).Run()

			a.facade.TriggerSync()

			<-ctx.Done()
			a.log.Info().Msg("shutting down")
			return nil
		},
	}
}
