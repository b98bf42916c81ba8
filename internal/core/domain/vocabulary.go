package domain

// WordSet is a named collection of vocabulary items on the source platform.
type WordSet struct {
	ID    int64
	Title string
}

// Word is one entry of a word set. Its meaning lives in a separate
// numbering space and must be resolved through a meaning lookup.
type Word struct {
	ID        int64
	MeaningID int64
}

// Meaning is a specific sense of a word with its headword and translation.
// It is the unit written to the target platform.
type Meaning struct {
	ID          string
	Text        string
	Translation string
}

// SyncCounters tracks how many meanings a run added or skipped.
type SyncCounters struct {
	NewWords      int
	ExistingWords int
}

// Total returns the number of meanings evaluated so far.
func (c SyncCounters) Total() int {
	return c.NewWords + c.ExistingWords
}
