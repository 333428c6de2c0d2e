package workers

import (
	"context"
	"sync"
	"time"

	"github.com/avilov/zonesync/internal/config"
	"github.com/avilov/zonesync/internal/facade"
	"github.com/avilov/zonesync/internal/logger"
)

type syncJob struct {
	facade facade.SyncFacade
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob that triggers the facade on a ticker. The job
// is idle until Start is called.
func NewSyncJob(f facade.SyncFacade, log *logger.Logger) SyncJob {
	return &syncJob{facade: f, logger: log}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that triggers a sync every interval. If
// interval is zero or negative it defaults to [config.DefaultSyncInterval].
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", interval).Msg("periodic sync job started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.facade.TriggerSync()
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
