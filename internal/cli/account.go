package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avilov/zonesync/models"
)

// NewAccountCommand creates the account command.
func NewAccountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Print the remote account status",
		Long: `Check whether the configured account accepts syncing and print the
answer: available, no_account, restricted, or indeterminate. Exits non-zero
unless the account is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			status := a.facade.CheckAccountStatus(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), status)

			if status != models.AccountAvailable {
				return fmt.Errorf("account is %s", status)
			}
			return nil
		},
	}
}
