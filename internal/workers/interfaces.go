// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the periodic sync job.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// SyncJob triggers sync cycles on a fixed interval.
type SyncJob interface {
	// Start launches the periodic trigger, stopping any previous run first.
	// A non-positive interval falls back to the default. The job exits when
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop halts the job and blocks until its goroutine has exited. Safe to
	// call when the job is not running.
	Stop()
}
