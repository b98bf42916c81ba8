package driven

import (
	"context"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

// RunStore persists the sync run journal.
type RunStore interface {
	// SaveRun stores or updates a run record.
	SaveRun(ctx context.Context, run domain.SyncRun) error

	// GetRun retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, id string) (*domain.SyncRun, error)

	// ListRuns returns the most recent runs first, at most limit entries.
	// A limit <= 0 returns all runs.
	ListRuns(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// RecordAddedWord appends a word added during a run.
	RecordAddedWord(ctx context.Context, word domain.AddedWord) error

	// ListAddedWords returns words added during a run in insertion order.
	ListAddedWords(ctx context.Context, runID string) ([]domain.AddedWord, error)
}
