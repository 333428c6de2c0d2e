package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/models"
)

type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalRecordRepository(db *DB, log *logger.Logger) LocalStore {
	return &localRecordRepository{
		DB:     db,
		logger: log,
	}
}

// ApplyUpsert implements [LocalStore]. The upsert keys on the full record
// identifier, so replaying the same batch after a crash rewrites identical
// rows instead of duplicating them.
func (l *localRecordRepository) ApplyUpsert(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertRemoteRecord,
		record.ID.Zone.Owner,
		record.ID.Zone.Name,
		record.ID.Name,
		record.EntityType,
		[]byte(record.Payload),
		record.ChangeTag,
		record.ModifiedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.ApplyUpsert").
			Str("record_id", record.ID.String()).
			Msg("failed to upsert remote record")
		return fmt.Errorf("failed to upsert record %s: %w", record.ID, err)
	}

	return nil
}

// ApplyDeletion implements [LocalStore]. Deleting an absent record succeeds,
// which makes batch replay safe.
func (l *localRecordRepository) ApplyDeletion(ctx context.Context, id models.RecordID) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, deleteRecord, id.Zone.Owner, id.Zone.Name, id.Name)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.ApplyDeletion").
			Str("record_id", id.String()).
			Msg("failed to delete record")
		return fmt.Errorf("failed to delete record %s: %w", id, err)
	}

	return nil
}

// FetchLocallyModified implements [LocalStore].
func (l *localRecordRepository) FetchLocallyModified(ctx context.Context, entityType string) ([]models.Record, error) {
	query := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"pending": 1}).
		OrderBy("modified_at")
	if entityType != "" {
		query = query.Where(sq.Eq{"entity_type": entityType})
	}

	return l.selectRecords(ctx, query, "FetchLocallyModified")
}

// List implements [LocalStore].
func (l *localRecordRepository) List(ctx context.Context, entityType string) ([]models.Record, error) {
	query := sq.Select(recordColumns...).
		From("records").
		OrderBy("zone_owner", "zone_name", "name")
	if entityType != "" {
		query = query.Where(sq.Eq{"entity_type": entityType})
	}

	return l.selectRecords(ctx, query, "List")
}

var recordColumns = []string{
	"zone_owner", "zone_name", "name",
	"entity_type", "payload", "change_tag", "modified_at",
}

func (l *localRecordRepository) selectRecords(ctx context.Context, query sq.SelectBuilder, caller string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build records query: %w", err)
	}

	rows, err := l.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository."+caller).
			Msg("failed to query records")
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		var payload []byte
		err = rows.Scan(
			&r.ID.Zone.Owner,
			&r.ID.Zone.Name,
			&r.ID.Name,
			&r.EntityType,
			&payload,
			&r.ChangeTag,
			&r.ModifiedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "localRecordRepository."+caller).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		r.Payload = payload
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate record rows: %w", err)
	}

	return records, nil
}

// EntityTypes implements [LocalStore].
func (l *localRecordRepository) EntityTypes(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, pendingEntityTypes)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.EntityTypes").
			Msg("failed to query pending entity types")
		return nil, fmt.Errorf("failed to query pending entity types: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err = rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan entity type row: %w", err)
		}
		types = append(types, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entity type rows: %w", err)
	}

	return types, nil
}

// MarkSynced implements [LocalStore].
func (l *localRecordRepository) MarkSynced(ctx context.Context, id models.RecordID, changeTag string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, markRecordSynced, changeTag, id.Zone.Owner, id.Zone.Name, id.Name)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.MarkSynced").
			Str("record_id", id.String()).
			Msg("failed to mark record synced")
		return fmt.Errorf("failed to mark record %s synced: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}

	return nil
}

// Put implements [LocalStore].
func (l *localRecordRepository) Put(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, upsertLocalRecord,
		record.ID.Zone.Owner,
		record.ID.Zone.Name,
		record.ID.Name,
		record.EntityType,
		[]byte(record.Payload),
		record.ChangeTag,
		record.ModifiedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.Put").
			Str("record_id", record.ID.String()).
			Msg("failed to store local record")
		return fmt.Errorf("failed to store record %s: %w", record.ID, err)
	}

	return nil
}
