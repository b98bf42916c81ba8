// Package memory provides in-memory driven adapters. The run store here
// backs syncs started with the journal disabled and is used in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu    sync.RWMutex
	runs  map[string]domain.SyncRun
	words map[string][]domain.AddedWord
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs:  make(map[string]domain.SyncRun),
		words: make(map[string][]domain.AddedWord),
	}
}

// SaveRun stores or updates a run record.
func (s *RunStore) SaveRun(_ context.Context, run domain.SyncRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// GetRun retrieves a run by ID.
func (s *RunStore) GetRun(_ context.Context, id string) (*domain.SyncRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &run, nil
}

// ListRuns returns the most recent runs first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.SyncRun, error) {
	s.mu.RLock()
	runs := make([]domain.SyncRun, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	s.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// RecordAddedWord appends a word added during a run.
func (s *RunStore) RecordAddedWord(_ context.Context, word domain.AddedWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[word.RunID] = append(s.words[word.RunID], word)
	return nil
}

// ListAddedWords returns words added during a run in insertion order.
func (s *RunStore) ListAddedWords(_ context.Context, runID string) ([]domain.AddedWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := s.words[runID]
	if len(words) == 0 {
		return nil, nil
	}
	out := make([]domain.AddedWord, len(words))
	copy(out, words)
	return out, nil
}
