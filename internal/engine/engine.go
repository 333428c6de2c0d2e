package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/internal/remote"
	"github.com/avilov/zonesync/internal/store"
	"github.com/avilov/zonesync/models"
)

type syncEngine struct {
	remote remote.RecordStore
	local  store.LocalStore
	tokens store.TokenStore
	zone   models.ZoneID

	logger *logger.Logger

	// mu guards status, lastErr, and tokenCache. Together with the
	// re-entrancy guard in Sync it makes the engine behave as a single
	// logical actor: at most one cycle body executes at a time.
	mu         sync.Mutex
	status     models.SyncStatus
	lastErr    error
	tokenCache map[models.TokenScope]models.ChangeToken

	broadcast *StatusBroadcaster
}

// NewSyncEngine builds an Engine syncing the given zone. The status starts at
// [models.SyncIdle].
func NewSyncEngine(recordStore remote.RecordStore, storages *store.ClientStorages, zone models.ZoneID, log *logger.Logger) Engine {
	return &syncEngine{
		remote:     recordStore,
		local:      storages.Records,
		tokens:     storages.Tokens,
		zone:       zone,
		logger:     log,
		status:     models.SyncIdle,
		tokenCache: make(map[models.TokenScope]models.ChangeToken),
		broadcast:  NewStatusBroadcaster(),
	}
}

// Sync implements [Engine]. One cycle: serialize entry, upload pending local
// records, download database- and zone-level deltas since the stored tokens,
// apply them, persist the new tokens, publish the final status. Upload and
// download are independent failure domains: a failed upload phase does not
// skip the download phase, but the cycle still ends Failed.
func (e *syncEngine) Sync(ctx context.Context) error {
	if !e.begin() {
		e.logger.Debug().Msg("sync already running, trigger ignored")
		return nil
	}

	log := e.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	log.Info().Str("zone", e.zone.String()).Msg("sync cycle starting")

	uploadErr := e.uploadPhase(ctx)
	if uploadErr != nil {
		log.Warn().Err(uploadErr).Msg("upload phase finished with errors")
	}

	downloadErr := e.downloadPhase(ctx)
	if downloadErr != nil {
		log.Warn().Err(downloadErr).Msg("download phase failed")
	}

	err := errors.Join(uploadErr, downloadErr)
	e.finish(err)

	if err != nil {
		log.Error().Err(err).Msg("sync cycle failed")
		return err
	}

	log.Info().Msg("sync cycle completed")
	return nil
}

// begin moves the engine into Running unless a cycle is already in flight.
func (e *syncEngine) begin() bool {
	e.mu.Lock()
	if e.status == models.SyncRunning {
		e.mu.Unlock()
		return false
	}
	e.status = models.SyncRunning
	e.lastErr = nil
	e.mu.Unlock()

	e.broadcast.Publish(models.SyncRunning)
	return true
}

// finish records the cycle outcome. Partially applied, already-token-persisted
// work is kept on failure; the next cycle resumes from the last saved tokens.
func (e *syncEngine) finish(err error) {
	e.mu.Lock()
	if err != nil {
		e.status = models.SyncFailed
		e.lastErr = err
	} else {
		e.status = models.SyncCompleted
	}
	status := e.status
	e.mu.Unlock()

	e.broadcast.Publish(status)
}

// uploadPhase hands every pending local record to the remote store.
// Per-record failures are collected, not fatal: a record that fails upload
// stays pending for the next cycle. A conflict in particular resolves itself
// once the download phase refreshes the local copy.
func (e *syncEngine) uploadPhase(ctx context.Context) error {
	log := logger.FromContext(ctx)

	entityTypes, err := e.local.EntityTypes(ctx)
	if err != nil {
		return fmt.Errorf("list pending entity types: %w", err)
	}

	var errs []error
	for _, entityType := range entityTypes {
		records, err := e.local.FetchLocallyModified(ctx, entityType)
		if err != nil {
			errs = append(errs, fmt.Errorf("fetch pending %s records: %w", entityType, err))
			continue
		}

		for _, record := range records {
			saved, err := e.remote.SaveRecord(ctx, record)
			if err != nil {
				if errors.Is(err, remote.ErrConflict) {
					log.Warn().
						Str("record_id", record.ID.String()).
						Msg("upload conflict, record stays pending until download refreshes it")
				}
				errs = append(errs, fmt.Errorf("upload record %s: %w", record.ID, err))
				continue
			}

			if err = e.local.MarkSynced(ctx, record.ID, saved.ChangeTag); err != nil {
				errs = append(errs, fmt.Errorf("mark record %s synced: %w", record.ID, err))
			}
		}
	}

	return errors.Join(errs...)
}

// downloadPhase asks which zones changed since the stored database token,
// pulls each changed zone's delta since its stored zone token, applies the
// batches to the local store, and persists tokens strictly after successful
// application. The database token is persisted only after every changed zone
// was applied, so a failed zone is revisited on the next cycle.
func (e *syncEngine) downloadPhase(ctx context.Context) error {
	dbToken, err := e.loadToken(ctx, models.DatabaseScope)
	if err != nil {
		return err
	}

	changes, err := e.remote.DatabaseChanges(ctx, dbToken)
	if errors.Is(err, remote.ErrTokenExpired) {
		if err = e.clearToken(ctx, models.DatabaseScope); err != nil {
			return err
		}
		changes, err = e.remote.DatabaseChanges(ctx, nil)
	}
	if err != nil {
		return fmt.Errorf("database changes: %w", err)
	}

	for _, zone := range changes.ChangedZones {
		if err = e.syncZone(ctx, zone); err != nil {
			return err
		}
	}

	if changes.NewToken != nil {
		if err = e.saveToken(ctx, models.DatabaseScope, changes.NewToken); err != nil {
			return err
		}
	}

	return nil
}

// syncZone fetches and applies one zone's delta. The zone token is persisted
// only after the whole batch is applied: a crash in between replays the batch
// next cycle, which the local store absorbs idempotently.
func (e *syncEngine) syncZone(ctx context.Context, zone models.ZoneID) error {
	log := logger.FromContext(ctx)
	scope := models.ZoneScope(zone)

	zoneToken, err := e.loadToken(ctx, scope)
	if err != nil {
		return err
	}

	batch, err := e.remote.ZoneChanges(ctx, zone, zoneToken)
	if errors.Is(err, remote.ErrTokenExpired) {
		if err = e.clearToken(ctx, scope); err != nil {
			return err
		}
		batch, err = e.remote.ZoneChanges(ctx, zone, nil)
	}
	if err != nil {
		return fmt.Errorf("zone changes for %s: %w", zone, err)
	}

	for _, record := range batch.Records {
		if err = e.local.ApplyUpsert(ctx, record); err != nil {
			return fmt.Errorf("apply upsert in zone %s: %w", zone, err)
		}
	}
	for _, id := range batch.Deleted {
		if err = e.local.ApplyDeletion(ctx, id); err != nil {
			return fmt.Errorf("apply deletion in zone %s: %w", zone, err)
		}
	}

	log.Debug().
		Str("zone", zone.String()).
		Int("upserts", len(batch.Records)).
		Int("deletions", len(batch.Deleted)).
		Msg("zone delta applied")

	if batch.NewToken != nil {
		if err = e.saveToken(ctx, scope, batch.NewToken); err != nil {
			return err
		}
	}

	return nil
}

// Status implements [Engine].
func (e *syncEngine) Status() models.SyncStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// LastError implements [Engine].
func (e *syncEngine) LastError() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// Subscribe implements [Engine].
func (e *syncEngine) Subscribe() (<-chan models.SyncStatus, func()) {
	return e.broadcast.Subscribe()
}

// CheckAccountStatus implements [Engine]. Account-status ambiguity must never
// crash a caller: any internal error is logged and folded into
// [models.AccountIndeterminate].
func (e *syncEngine) CheckAccountStatus(ctx context.Context) models.AccountStatus {
	status, err := e.remote.AccountStatus(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("account status check failed")
		return models.AccountIndeterminate
	}
	return status
}

// EnsureZone implements [Engine].
func (e *syncEngine) EnsureZone(ctx context.Context) error {
	_, err := e.remote.ModifyZones(ctx, []models.ZoneID{e.zone}, nil)
	if err != nil {
		return fmt.Errorf("ensure zone %s: %w", e.zone, err)
	}
	return nil
}

// loadToken returns the cached token for scope, falling back to the durable
// store on first use. A cached nil means "known absent".
func (e *syncEngine) loadToken(ctx context.Context, scope models.TokenScope) (models.ChangeToken, error) {
	e.mu.Lock()
	token, ok := e.tokenCache[scope]
	e.mu.Unlock()
	if ok {
		return token, nil
	}

	token, err := e.tokens.Load(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("load token for %s: %w", scope, err)
	}

	e.mu.Lock()
	e.tokenCache[scope] = token
	e.mu.Unlock()
	return token, nil
}

func (e *syncEngine) saveToken(ctx context.Context, scope models.TokenScope, token models.ChangeToken) error {
	if err := e.tokens.Save(ctx, scope, token); err != nil {
		return fmt.Errorf("save token for %s: %w", scope, err)
	}

	e.mu.Lock()
	e.tokenCache[scope] = token.Clone()
	e.mu.Unlock()
	return nil
}

func (e *syncEngine) clearToken(ctx context.Context, scope models.TokenScope) error {
	if err := e.tokens.Clear(ctx, scope); err != nil {
		return fmt.Errorf("clear token for %s: %w", scope, err)
	}

	e.mu.Lock()
	e.tokenCache[scope] = nil
	e.mu.Unlock()
	return nil
}
