// Package remote defines the client's view of the remote record store and its
// HTTP implementation. All operations are network I/O only; nothing here
// mutates local state.
package remote

import (
	"context"

	"github.com/avilov/zonesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore is the capability set the sync engine needs from a remote
// record database. Errors returned by implementations are classified with the
// sentinels in this package so the engine can decide between retry and abort.
type RecordStore interface {
	// SaveRecord persists one record. Fails with [ErrConflict] when the
	// remote copy carries a newer change tag, and with [ErrTransient] on
	// network faults. On success the returned record carries the
	// server-assigned change tag.
	SaveRecord(ctx context.Context, record models.Record) (models.Record, error)

	// QueryRecords runs a zone-scoped query. A non-empty cursor in query
	// continues a previous page; a non-empty cursor in the returned page
	// means more results exist in the same relative order.
	QueryRecords(ctx context.Context, query models.RecordQuery, zone models.ZoneID, cursor string) (models.QueryPage, error)

	// ModifyZones creates and deletes record zones. Idempotent: creating an
	// existing zone or deleting an absent one is not an error.
	ModifyZones(ctx context.Context, create []models.ZoneID, drop []models.ZoneID) (models.ZoneModification, error)

	// DatabaseChanges returns the zones changed since the given token.
	// A nil token requests changes from the beginning of time. Fails with
	// [ErrTokenExpired] when the server no longer honours the token.
	DatabaseChanges(ctx context.Context, since models.ChangeToken) (models.DatabaseChanges, error)

	// ZoneChanges returns the records changed and deleted in one zone since
	// the given token, plus the zone's next token. A nil token requests the
	// zone's full contents.
	ZoneChanges(ctx context.Context, zone models.ZoneID, since models.ChangeToken) (models.RemoteChangeBatch, error)

	// AccountStatus reports whether the remote account accepts syncing.
	AccountStatus(ctx context.Context) (models.AccountStatus, error)

	// SetToken stores the bearer token used on subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string
}
