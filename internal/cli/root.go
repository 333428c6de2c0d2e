// Package cli wires the zonesync commands. Flags feed the layered
// configuration as overrides; environment variables still take precedence and
// a JSON config file sits below both.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/avilov/zonesync/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Overrides config.Overrides
}

// NewRootCommand creates the root command for the zonesync CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zonesync",
		Short: "Delta synchronization client for zoned record stores",
		Long: `zonesync keeps a local SQLite replica in step with a remote record store
using change tokens: each cycle uploads pending local edits, asks which zones
changed since the last database token, pulls each changed zone's delta, and
advances the tokens only after the delta is applied locally.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Overrides.RemoteAddress, "remote", "", "remote record store base URL")
	flags.StringVar(&opts.Overrides.AuthToken, "token", "", "bearer token for the remote store")
	flags.DurationVar(&opts.Overrides.RequestTimeout, "timeout", 0, "outbound request timeout")
	flags.StringVar(&opts.Overrides.DBPath, "db", "", "path to the local SQLite database")
	flags.StringVar(&opts.Overrides.ZoneName, "zone", "", "record zone name")
	flags.StringVar(&opts.Overrides.ZoneOwner, "owner", "", "record zone owner")
	flags.DurationVar(&opts.Overrides.SyncInterval, "interval", 0, "periodic sync interval for watch")
	flags.StringVar(&opts.Overrides.ConfigFile, "config", "", "path to a JSON config file")

	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewAccountCommand(opts))
	cmd.AddCommand(NewZoneCommand(opts))
	cmd.AddCommand(NewRecordCommand(opts))

	return cmd
}
