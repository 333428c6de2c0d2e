// Package facade projects the sync engine's state for UI-level consumers: a
// cached status, a fan-out subscription, and fire-and-forget triggering. It
// never blocks the engine and holds no sync logic of its own.
package facade

import (
	"context"

	"github.com/avilov/zonesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/facade_mock.go -package=mock

// SyncFacade is the read-mostly surface consumers hold instead of the engine.
type SyncFacade interface {
	// TriggerSync requests a sync cycle and returns immediately. The cycle
	// outcome is observed through Status and Subscribe; a trigger while a
	// cycle runs is absorbed by the engine.
	TriggerSync()

	// Status returns the last status observed from the engine.
	Status() models.SyncStatus

	// Subscribe streams status updates. The cancel func releases the
	// subscription and is idempotent.
	Subscribe() (<-chan models.SyncStatus, func())

	// CheckAccountStatus forwards to the engine's account check.
	CheckAccountStatus(ctx context.Context) models.AccountStatus

	// Close detaches from the engine and closes all subscriber channels.
	Close()
}
