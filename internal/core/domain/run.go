package domain

import "time"

// RunStatus is the lifecycle state of a sync run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// SyncRun is the journal record of one sync invocation.
// The journal is informational; sync decisions never read it.
type SyncRun struct {
	// ID is the unique identifier (UUID).
	ID string
	// StartedAt is when the run began.
	StartedAt time.Time
	// FinishedAt is zero while the run is in progress.
	FinishedAt time.Time
	Status     RunStatus
	Counters   SyncCounters
	// WordSets is how many word sets were listed.
	WordSets int
	// MeaningIDs is how many meaning ids were collected for lookup.
	MeaningIDs int
	// Error holds the message of the error that aborted the run.
	Error string
}

// Duration returns how long the run took, or zero if unfinished.
func (r SyncRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// AddedWord records one word written to the target platform during a run.
type AddedWord struct {
	RunID       string
	Text        string
	Translation string
	AddedAt     time.Time
}
