package cli

import (
	"fmt"

	"github.com/avilov/zonesync/internal/config"
	"github.com/avilov/zonesync/internal/engine"
	"github.com/avilov/zonesync/internal/facade"
	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/internal/remote"
	"github.com/avilov/zonesync/internal/store"
	"github.com/avilov/zonesync/models"
)

// app bundles the wired client: configuration, engine, and facade on top of
// the remote adapter and local storage.
type app struct {
	cfg    *config.ClientConfig
	log    *logger.Logger
	engine engine.Engine
	facade facade.SyncFacade

	remote   remote.RecordStore
	storages *store.ClientStorages
}

// buildApp assembles the full client from the merged configuration.
func buildApp(opts *RootOptions) (*app, error) {
	cfg, err := config.GetClientConfig(opts.Overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger("zonesync")

	recordStore, err := remote.NewHTTPRecordStore(cfg.Remote, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	zone := models.ZoneID{Name: cfg.Sync.ZoneName, Owner: cfg.Sync.ZoneOwner}
	eng := engine.NewSyncEngine(recordStore, storages, zone, log)

	return &app{
		cfg:      cfg,
		log:      log,
		engine:   eng,
		facade:   facade.NewSyncFacade(eng, log),
		remote:   recordStore,
		storages: storages,
	}, nil
}

// close releases the facade's event loop and the local database.
func (a *app) close() {
	a.facade.Close()
	if err := a.storages.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close local storage")
	}
}
