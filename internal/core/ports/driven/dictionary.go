package driven

import (
	"context"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

// Dictionary is the learner's personal dictionary on the target platform.
type Dictionary interface {
	// Authenticate exchanges credentials for a session.
	Authenticate(ctx context.Context, creds domain.Credentials) error

	// WordExists reports whether the learner already knows the word.
	WordExists(ctx context.Context, word string) (bool, error)

	// AddWord stores a word with its translation.
	AddWord(ctx context.Context, word, translation string) error
}
