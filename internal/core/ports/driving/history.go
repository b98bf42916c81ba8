package driving

import (
	"context"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

// RunHistory exposes the sync run journal.
type RunHistory interface {
	// Recent returns the latest runs, newest first.
	Recent(ctx context.Context, limit int) ([]domain.SyncRun, error)

	// Get returns a single run.
	Get(ctx context.Context, id string) (*domain.SyncRun, error)

	// AddedWords returns the words a run added.
	AddedWords(ctx context.Context, id string) ([]domain.AddedWord, error)
}
