package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSyncCommand creates the sync command: one full cycle, then exit.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync cycle and exit",
		Long: `Ensure the configured record zone exists, run one full sync cycle
(upload pending local edits, then download and apply remote deltas), and
print the final status. Exits non-zero when the cycle failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			if err = a.engine.EnsureZone(ctx); err != nil {
				return err
			}

			syncErr := a.engine.Sync(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.Status())

			if syncErr != nil {
				return fmt.Errorf("sync: %w", syncErr)
			}
			return nil
		},
	}
}
