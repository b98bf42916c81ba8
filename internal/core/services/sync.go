package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*SyncOrchestrator)(nil)

// SyncOptions configures a sync run.
type SyncOptions struct {
	SourceCredentials domain.Credentials
	TargetCredentials domain.Credentials
	// BatchSize caps meaning ids per lookup. Zero means DefaultBatchSize.
	BatchSize int
}

// SyncOrchestrator mirrors vocabulary from the source into the target dictionary.
// It is the only writer of the run counters.
type SyncOrchestrator struct {
	source   driven.VocabularySource
	target   driven.Dictionary
	runs     driven.RunStore
	progress driven.ProgressReporter
	opts     SyncOptions

	now   func() time.Time
	newID func() string
}

// NewSyncOrchestrator creates a new sync orchestrator.
// The runs and progress ports are optional - if nil, runs are not journaled
// and progress is not reported.
func NewSyncOrchestrator(
	source driven.VocabularySource,
	target driven.Dictionary,
	runs driven.RunStore,
	progress driven.ProgressReporter,
	opts SyncOptions,
) *SyncOrchestrator {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if progress == nil {
		progress = nopProgress{}
	}
	return &SyncOrchestrator{
		source:   source,
		target:   target,
		runs:     runs,
		progress: progress,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Run performs one sync. It aborts on the first error; words already added
// stay added and the returned run carries the counters as last updated.
func (o *SyncOrchestrator) Run(ctx context.Context) (*domain.SyncRun, error) {
	run := &domain.SyncRun{
		ID:        o.newID(),
		StartedAt: o.now(),
		Status:    domain.RunRunning,
	}
	o.journal(ctx, run)

	err := o.run(ctx, run)

	run.FinishedAt = o.now()
	if err != nil {
		run.Status = domain.RunFailed
		run.Error = err.Error()
	} else {
		run.Status = domain.RunSucceeded
	}
	// The journal write must outlive a cancelled run context.
	o.journal(context.WithoutCancel(ctx), run)

	if err != nil {
		return run, err
	}
	o.progress.Finished(run.Counters)
	logger.Info("Sync complete: %d added, %d skipped", run.Counters.NewWords, run.Counters.ExistingWords)
	return run, nil
}

func (o *SyncOrchestrator) run(ctx context.Context, run *domain.SyncRun) error {
	// 1. Authenticate both platforms
	if err := o.authenticate(ctx); err != nil {
		return err
	}

	// 2. Collect meaning ids across all word sets, in order, duplicates kept
	meaningIDs, err := o.collectMeaningIDs(ctx, run)
	if err != nil {
		return err
	}
	run.MeaningIDs = len(meaningIDs)

	// 3. Resolve meanings batch by batch and mirror each one
	o.progress.AddingStarted()
	for i, batch := range Chunk(meaningIDs, o.opts.BatchSize) {
		logger.Debug("Looking up batch %d (%d ids)", i+1, len(batch))

		meanings, err := o.source.GetMeanings(ctx, batch)
		if err != nil {
			return fmt.Errorf("get meanings (batch %d): %w", i+1, err)
		}

		for _, meaning := range meanings {
			if err := o.mirror(ctx, run, meaning); err != nil {
				return err
			}
		}
	}
	return nil
}

// authenticate logs in to both platforms concurrently; both must succeed.
func (o *SyncOrchestrator) authenticate(ctx context.Context) error {
	var (
		wg                sync.WaitGroup
		sourceErr, tgtErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := o.source.Authenticate(ctx, o.opts.SourceCredentials); err != nil {
			sourceErr = fmt.Errorf("authenticate source: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := o.target.Authenticate(ctx, o.opts.TargetCredentials); err != nil {
			tgtErr = fmt.Errorf("authenticate target: %w", err)
		}
	}()
	wg.Wait()

	return errors.Join(sourceErr, tgtErr)
}

func (o *SyncOrchestrator) collectMeaningIDs(ctx context.Context, run *domain.SyncRun) ([]int64, error) {
	sets, err := o.source.ListWordSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list word sets: %w", err)
	}
	run.WordSets = len(sets)

	var ids []int64
	for _, set := range sets {
		words, err := o.source.ListWords(ctx, set.ID)
		if err != nil {
			return nil, fmt.Errorf("list words for set %d (%s): %w", set.ID, set.Title, err)
		}

		for _, w := range words {
			ids = append(ids, w.MeaningID)
		}
		o.progress.WordSetFetched(set, len(words))
	}
	return ids, nil
}

// mirror adds the meaning unless the target already knows it.
func (o *SyncOrchestrator) mirror(ctx context.Context, run *domain.SyncRun, meaning domain.Meaning) error {
	exists, err := o.target.WordExists(ctx, meaning.Text)
	if err != nil {
		return fmt.Errorf("check %q: %w", meaning.Text, err)
	}

	if exists {
		run.Counters.ExistingWords++
		o.progress.WordProcessed(meaning, false)
		return nil
	}

	if err := o.target.AddWord(ctx, meaning.Text, meaning.Translation); err != nil {
		return fmt.Errorf("add %q: %w", meaning.Text, err)
	}
	run.Counters.NewWords++
	o.progress.WordProcessed(meaning, true)

	if o.runs != nil {
		added := domain.AddedWord{
			RunID:       run.ID,
			Text:        meaning.Text,
			Translation: meaning.Translation,
			AddedAt:     o.now(),
		}
		if err := o.runs.RecordAddedWord(ctx, added); err != nil {
			logger.Warn("Failed to journal added word %q: %v", meaning.Text, err)
		}
	}
	return nil
}

// journal saves the run record. Journal failures never change the sync outcome.
func (o *SyncOrchestrator) journal(ctx context.Context, run *domain.SyncRun) {
	if o.runs == nil {
		return
	}
	if err := o.runs.SaveRun(ctx, *run); err != nil {
		logger.Warn("Failed to journal run %s: %v", run.ID, err)
	}
}

// nopProgress discards progress events.
type nopProgress struct{}

func (nopProgress) WordSetFetched(domain.WordSet, int) {}
func (nopProgress) AddingStarted()                     {}
func (nopProgress) WordProcessed(domain.Meaning, bool) {}
func (nopProgress) Finished(domain.SyncCounters)       {}
