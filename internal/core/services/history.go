package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.RunHistory = (*HistoryService)(nil)

// DefaultHistoryLimit is how many runs Recent returns for a non-positive limit.
const DefaultHistoryLimit = 20

// HistoryService reads the sync run journal.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// Recent returns the latest runs, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	if s.runs == nil {
		return nil, errors.New("run journal not configured")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	runs, err := s.runs.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns a single run.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.SyncRun, error) {
	if s.runs == nil {
		return nil, errors.New("run journal not configured")
	}
	if id == "" {
		return nil, fmt.Errorf("%w: run id is required", domain.ErrInvalidInput)
	}
	return s.runs.GetRun(ctx, id)
}

// AddedWords returns the words a run added, in the order they were added.
func (s *HistoryService) AddedWords(ctx context.Context, id string) ([]domain.AddedWord, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	words, err := s.runs.ListAddedWords(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list added words: %w", err)
	}
	return words, nil
}
