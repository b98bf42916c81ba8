package driven

import "github.com/custodia-labs/vocabsync/internal/core/domain"

// ProgressReporter receives progress events from a sync run.
// Implementations must not block; they are called inline.
type ProgressReporter interface {
	// WordSetFetched is called once per word set after its words are listed.
	WordSetFetched(set domain.WordSet, wordCount int)

	// AddingStarted is called before the first meaning lookup.
	AddingStarted()

	// WordProcessed is called after each meaning is added or skipped.
	WordProcessed(meaning domain.Meaning, added bool)

	// Finished is called once with the final counters of a successful run.
	Finished(counters domain.SyncCounters)
}
