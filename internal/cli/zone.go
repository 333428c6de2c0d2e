package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewZoneCommand creates the zone command group.
func NewZoneCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Manage the record zone",
	}

	cmd.AddCommand(newZoneInitCommand(rootOpts))
	return cmd
}

func newZoneInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Provision the configured record zone",
		Long: `Create the configured record zone on the remote store. Creating a zone
that already exists is not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			if err = a.engine.EnsureZone(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "zone %s/%s ready\n", a.cfg.Sync.ZoneOwner, a.cfg.Sync.ZoneName)
			return nil
		},
	}
}
