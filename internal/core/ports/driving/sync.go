package driving

import (
	"context"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

// SyncOrchestrator mirrors source vocabulary into the target dictionary.
type SyncOrchestrator interface {
	// Run performs one full sync. The returned run is never nil and carries
	// the counters as last updated, also when an error aborted the run.
	Run(ctx context.Context) (*domain.SyncRun, error)
}
