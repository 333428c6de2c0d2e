package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avilov/zonesync/internal/utils"
	"github.com/avilov/zonesync/models"
)

// NewRecordCommand creates the record command group.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Inspect and edit records",
	}

	cmd.AddCommand(newRecordPutCommand(rootOpts))
	cmd.AddCommand(newRecordListCommand(rootOpts))
	return cmd
}

func newRecordPutCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name       string
		entityType string
	)

	cmd := &cobra.Command{
		Use:   "put <payload-json>",
		Short: "Store a local record pending upload",
		Long: `Store a record in the local database and mark it pending. The next sync
cycle uploads it. Without --name a time-ordered UUID is generated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := json.RawMessage(args[0])
			if !json.Valid(payload) {
				return fmt.Errorf("payload is not valid JSON")
			}

			a, err := buildApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			if name == "" {
				name = utils.NewUUIDGenerator().Generate()
			}

			record := models.Record{
				ID: models.RecordID{
					Name: name,
					Zone: models.ZoneID{Name: a.cfg.Sync.ZoneName, Owner: a.cfg.Sync.ZoneOwner},
				},
				EntityType: entityType,
				Payload:    payload,
			}

			if err = a.storages.Records.Put(cmd.Context(), record); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), record.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "record name (generated when empty)")
	cmd.Flags().StringVar(&entityType, "type", "note", "record entity type")

	return cmd
}

func newRecordListCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		entityType string
		fromRemote bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records from the local replica or the remote store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp(rootOpts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			var records []models.Record

			if fromRemote {
				records, err = queryAllRemote(a, entityType, limit, cmd)
			} else {
				records, err = a.storages.Records.List(ctx, entityType)
			}
			if err != nil {
				return err
			}

			for _, record := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", record.ID, record.EntityType, record.Payload)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&entityType, "type", "", "filter by entity type")
	cmd.Flags().BoolVar(&fromRemote, "from-remote", false, "query the remote store instead of the local replica")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size for remote queries")

	return cmd
}

// queryAllRemote walks the remote query pagination until the cursor runs out.
func queryAllRemote(a *app, entityType string, limit int, cmd *cobra.Command) ([]models.Record, error) {
	zone := models.ZoneID{Name: a.cfg.Sync.ZoneName, Owner: a.cfg.Sync.ZoneOwner}
	query := models.RecordQuery{EntityType: entityType, Limit: limit}

	var (
		records []models.Record
		cursor  string
	)
	for {
		page, err := a.remote.QueryRecords(cmd.Context(), query, zone, cursor)
		if err != nil {
			return nil, err
		}
		records = append(records, page.Records...)

		if page.Cursor == "" {
			return records, nil
		}
		cursor = page.Cursor
	}
}
