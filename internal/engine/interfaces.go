// Package engine implements the delta-sync engine: it owns the sync status,
// orchestrates upload-then-download cycles against the remote record store,
// applies delta results to the local store, and drives change-token
// persistence.
package engine

import (
	"context"

	"github.com/avilov/zonesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is the sync engine's public surface. Exactly one sync cycle executes
// at a time; a trigger received while a cycle is running is a no-op.
type Engine interface {
	// Sync runs one full upload-then-download cycle. It returns nil when the
	// cycle completed (or was skipped because one is already running) and the
	// cycle's combined error when any phase failed. The same error remains
	// readable via LastError until the next cycle starts.
	Sync(ctx context.Context) error

	// Status returns the current sync status. Safe for concurrent use; a
	// read concurrent with a running cycle sees either the pre- or
	// post-transition value, never a torn one.
	Status() models.SyncStatus

	// LastError returns the failure detail retained from the last cycle, or
	// nil if that cycle completed.
	LastError() error

	// Subscribe registers a status observer. The returned channel receives
	// status transitions; slow consumers observe the latest value, not every
	// intermediate one. The cancel func releases the subscription.
	Subscribe() (<-chan models.SyncStatus, func())

	// CheckAccountStatus reports the remote account's availability. Internal
	// errors yield [models.AccountIndeterminate] rather than propagating.
	CheckAccountStatus(ctx context.Context) models.AccountStatus

	// EnsureZone idempotently provisions the engine's record zone on the
	// remote store.
	EnsureZone(ctx context.Context) error
}
