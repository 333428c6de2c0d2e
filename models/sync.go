package models

// SyncStatus is the externally observable state of the sync engine.
// There is exactly one status value per engine; only the engine mutates it,
// any number of observers may read it.
type SyncStatus int

const (
	// SyncIdle means no cycle has run yet, or the previous result has been
	// acknowledged by a new trigger.
	SyncIdle SyncStatus = iota
	// SyncRunning means a sync cycle is in flight. A trigger received while
	// in this state is a no-op, not an error.
	SyncRunning
	// SyncCompleted means the last cycle finished with every phase succeeding.
	SyncCompleted
	// SyncFailed means at least one phase of the last cycle failed. Progress
	// persisted before the failure is kept; the next cycle resumes from the
	// last durably saved tokens.
	SyncFailed
)

func (s SyncStatus) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncRunning:
		return "running"
	case SyncCompleted:
		return "completed"
	case SyncFailed:
		return "failed"
	default:
		return "unknown"
	}
}
