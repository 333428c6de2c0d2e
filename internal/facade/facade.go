package facade

import (
	"context"
	"sync"

	"github.com/avilov/zonesync/internal/engine"
	"github.com/avilov/zonesync/internal/logger"
	"github.com/avilov/zonesync/models"
)

type syncFacade struct {
	engine engine.Engine
	logger *logger.Logger

	mu   sync.Mutex
	last models.SyncStatus

	broadcast *engine.StatusBroadcaster
	unsub     func()
	done      chan struct{}

	closeOnce sync.Once
}

// NewSyncFacade subscribes to the engine and starts the event loop that keeps
// the cached status current and fans updates out to the facade's own
// subscribers.
func NewSyncFacade(eng engine.Engine, log *logger.Logger) SyncFacade {
	updates, unsub := eng.Subscribe()

	f := &syncFacade{
		engine:    eng,
		logger:    log,
		last:      eng.Status(),
		broadcast: engine.NewStatusBroadcaster(),
		unsub:     unsub,
		done:      make(chan struct{}),
	}

	go f.run(updates)
	return f
}

// run is the facade's single event loop. It exits when the engine-side
// subscription channel is closed by Close.
func (f *syncFacade) run(updates <-chan models.SyncStatus) {
	defer close(f.done)

	for status := range updates {
		f.mu.Lock()
		f.last = status
		f.mu.Unlock()

		f.broadcast.Publish(status)
	}
}

// TriggerSync implements [SyncFacade].
func (f *syncFacade) TriggerSync() {
	go func() {
		// The cycle outcome reaches callers through the status stream;
		// the error itself only matters for the log.
		if err := f.engine.Sync(context.Background()); err != nil {
			f.logger.Debug().Err(err).Msg("triggered sync cycle failed")
		}
	}()
}

// Status implements [SyncFacade].
func (f *syncFacade) Status() models.SyncStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Subscribe implements [SyncFacade].
func (f *syncFacade) Subscribe() (<-chan models.SyncStatus, func()) {
	return f.broadcast.Subscribe()
}

// CheckAccountStatus implements [SyncFacade].
func (f *syncFacade) CheckAccountStatus(ctx context.Context) models.AccountStatus {
	return f.engine.CheckAccountStatus(ctx)
}

// Close implements [SyncFacade].
func (f *syncFacade) Close() {
	f.closeOnce.Do(func() {
		f.unsub()
		<-f.done
		f.broadcast.Close()
	})
}
