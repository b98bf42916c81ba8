package driven

import (
	"context"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

// VocabularySource reads a learner's word collections from the source platform.
// Implementations hold an authenticated session; every read returns
// domain.ErrAuthRequired until Authenticate has succeeded.
type VocabularySource interface {
	// Authenticate runs the platform login handshake.
	// No partial session is kept if any step fails.
	Authenticate(ctx context.Context, creds domain.Credentials) error

	// ListWordSets returns every word set of the learner in server order.
	ListWordSets(ctx context.Context) ([]domain.WordSet, error)

	// ListWords returns every word of one word set in server order.
	ListWords(ctx context.Context, wordSetID int64) ([]domain.Word, error)

	// GetMeanings resolves meaning ids in one request.
	// Callers keep len(meaningIDs) within the platform batch limit.
	GetMeanings(ctx context.Context, meaningIDs []int64) ([]domain.Meaning, error)
}
