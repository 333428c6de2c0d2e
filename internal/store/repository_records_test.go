package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/models"
)

func newTestStorages(t *testing.T) (LocalStore, TokenStore) {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	require.NoError(t, db.Migrate())

	return NewLocalRecordRepository(db, logger.Nop()), NewTokenRepository(db, logger.Nop())
}

func testZone() models.ZoneID {
	return models.ZoneID{Name: "notes", Owner: "alice"}
}

func remoteRecord(name, entityType string) models.Record {
	return models.Record{
		ID:         models.RecordID{Name: name, Zone: testZone()},
		EntityType: entityType,
		Payload:    json.RawMessage(`{"title":"` + name + `"}`),
		ChangeTag:  "ct-" + name,
	}
}

// ── ApplyUpsert / ApplyDeletion ─────────────────────────────────────────────

func TestApplyUpsert_Idempotent(t *testing.T) {
	records, _ := newTestStorages(t)
	ctx := context.Background()
	rec := remoteRecord("r1", "note")

	// applying the same record twice simulates a crash-and-replay of a batch
	require.NoError(t, records.ApplyUpsert(ctx, rec))
	require.NoError(t, records.ApplyUpsert(ctx, rec))

	got, err := records.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, rec.ChangeTag, got[0].ChangeTag)
	assert.JSONEq(t, string(rec.Payload), string(got[0].Payload))
}

func TestApplyUpsert_OverwritesLocalPendingCopy(t *testing.T) {
	records, _ := newTestStorages(t)
	ctx := context.Background()

	local := remoteRecord("r1", "note")
	local.Payload = json.RawMessage(`{"title":"local edit"}`)
	require.NoError(t, records.Put(ctx, local))

	remote := remoteRecord("r1", "note")
	remote.Payload = json.RawMessage(`{"title":"server copy"}`)
	require.NoError(t, records.ApplyUpsert(ctx, remote))

	// the remote copy is authoritative: nothing stays pending
	pending, err := records.FetchLocallyModified(ctx, "note")
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := records.List(ctx, "note")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.JSONEq(t, `{"title":"server copy"}`, string(got[0].Payload))
}

func TestApplyDeletion_Idempotent(t *testing.T) {
	records, _ := newTestStorages(t)
	ctx := context.Background()
	rec := remoteRecord("r1", "note")

	require.NoError(t, records.ApplyUpsert(ctx, rec))
	require.NoError(t, records.ApplyDeletion(ctx, rec.ID))
	// replaying the deletion is a no-op, not an error
	require.NoError(t, records.ApplyDeletion(ctx, rec.ID))

	got, err := records.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestApplyBatchTwice_SameFinalState(t *testing.T) {
	records, _ := newTestStorages(t)
	ctx := context.Background()

	batch := models.RemoteChangeBatch{
		Records: []models.Record{
			remoteRecord("r1", "note"),
			remoteRecord("r2", "note"),
			remoteRecord("r3", "tag"),
		},
		Deleted: []models.RecordID{{Name: "r4", Zone: testZone()}},
	}

	apply := func() {
		for _, r := range batch.Records {
			require.NoError(t, records.ApplyUpsert(ctx, r))
		}
		for _, id := range batch.Deleted {
			require.NoError(t, records.ApplyDeletion(ctx, id))
		}
	}

	apply()
	first, err := records.List(ctx, "")
	require.NoError(t, err)

	apply()
	second, err := records.List(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 3)
}

// ── pending tracking ────────────────────────────────────────────────────────

func TestPut_MarksPending(t *testing.T) {
	records, _ := newTestStorages(t)
	ctx := context.Background()

	require.NoError(t, records.Put(ctx, remoteRecord("r1", "note")))
	require.NoError(t, records.Put(ctx, remoteRecord("r2", "tag")))

	types, err := records.EntityTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"note", "tag"}, types)

	notes, err := records.FetchLocallyModified(ctx, "note")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "r1", notes[0].ID.Name)
}

func TestMarkSynced_ClearsPending(t *testing.T) {
	records, _ := newTestStorages(t)
	ctx := context.Background()
	rec := remoteRecord("r1", "note")

	require.NoError(t, records.Put(ctx, rec))
	require.NoError(t, records.MarkSynced(ctx, rec.ID, "ct-new"))

	pending, err := records.FetchLocallyModified(ctx, "note")
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := records.List(ctx, "note")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ct-new", got[0].ChangeTag)
}

func TestMarkSynced_UnknownRecord(t *testing.T) {
	records, _ := newTestStorages(t)

	err := records.MarkSynced(context.Background(), models.RecordID{Name: "ghost", Zone: testZone()}, "ct")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
