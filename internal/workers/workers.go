package workers

import (
	"context"
	"time"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Run starts them in order.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// syncWorker adapts a SyncJob to the Worker interface so it can be started
// through a Workers aggregate.
type syncWorker struct {
	job      SyncJob
	ctx      context.Context
	interval time.Duration
}

// NewSyncWorker wraps job so that Run starts it with the given context and
// interval.
func NewSyncWorker(ctx context.Context, job SyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, ctx: ctx, interval: interval}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
