// Package store provides the client's local persistence: materialised remote
// records and the change tokens that drive delta sync, both in one SQLite
// database.
package store

import (
	"context"

	"github.com/avilov/zonesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStore materialises remote records into the local database and tracks
// which local edits still await upload. Apply operations are idempotent per
// record identifier: a replayed batch leaves the store unchanged.
type LocalStore interface {
	// ApplyUpsert inserts or overwrites a record received from the remote
	// store and clears its pending mark; the remote copy is authoritative.
	ApplyUpsert(ctx context.Context, record models.Record) error

	// ApplyDeletion removes the record. Deleting an absent record is a no-op.
	ApplyDeletion(ctx context.Context, id models.RecordID) error

	// FetchLocallyModified returns records of the given entity type still
	// marked pending upload.
	FetchLocallyModified(ctx context.Context, entityType string) ([]models.Record, error)

	// EntityTypes returns the distinct entity types that currently have
	// pending records.
	EntityTypes(ctx context.Context) ([]string, error)

	// MarkSynced clears the pending mark and stores the server-assigned
	// change tag after a successful upload.
	MarkSynced(ctx context.Context, id models.RecordID, changeTag string) error

	// Put stores a locally edited record and marks it pending upload.
	Put(ctx context.Context, record models.Record) error

	// List returns stored records, optionally filtered by entity type
	// (empty string means all).
	List(ctx context.Context, entityType string) ([]models.Record, error)
}

// TokenStore durably persists change tokens by scope. The sync engine is its
// only writer. A missing token for a scope means that scope must be resynced
// from the beginning of time.
type TokenStore interface {
	// Load returns the stored token for scope, or (nil, nil) when none
	// exists.
	Load(ctx context.Context, scope models.TokenScope) (models.ChangeToken, error)

	// Save overwrites the token for scope. Called strictly after the batch
	// the token acknowledges has been fully applied locally.
	Save(ctx context.Context, scope models.TokenScope, token models.ChangeToken) error

	// Clear removes the token for scope, forcing a full resync of that scope
	// on the next cycle. Clearing an absent token is a no-op.
	Clear(ctx context.Context, scope models.TokenScope) error
}
