package cli

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
)

// mockSyncOrchestrator implements driving.SyncOrchestrator for testing.
type mockSyncOrchestrator struct {
	run   *domain.SyncRun
	err   error
	calls int
	// onRun is invoked before returning, e.g. to emit progress.
	onRun func()
}

func (m *mockSyncOrchestrator) Run(_ context.Context) (*domain.SyncRun, error) {
	m.calls++
	if m.onRun != nil {
		m.onRun()
	}
	return m.run, m.err
}

// fakeBuilder implements Builder for testing.
type fakeBuilder struct {
	sync     *mockSyncOrchestrator
	history  driving.RunHistory
	config   driven.ConfigStore
	buildErr error

	gotOpts Options
	gotEnv  SyncEnv
	closed  int
	// beforeRun lets a test drive the env hooks during the run.
	beforeRun func(env SyncEnv)
}

func (b *fakeBuilder) ConfigStore(_ Options) (driven.ConfigStore, error) {
	return b.config, b.buildErr
}

func (b *fakeBuilder) SyncOrchestrator(_ context.Context, o Options, env SyncEnv) (driving.SyncOrchestrator, io.Closer, error) {
	b.gotOpts = o
	b.gotEnv = env
	if b.buildErr != nil {
		return nil, nil, b.buildErr
	}
	if b.beforeRun != nil {
		b.sync.onRun = func() { b.beforeRun(env) }
	}
	return b.sync, closerFunc(func() error { b.closed++; return nil }), nil
}

func (b *fakeBuilder) RunHistory(_ Options) (driving.RunHistory, io.Closer, error) {
	if b.buildErr != nil {
		return nil, nil, b.buildErr
	}
	return b.history, closerFunc(func() error { b.closed++; return nil }), nil
}

func TestSyncCmd_Use(t *testing.T) {
	assert.Equal(t, "sync", syncCmd.Use)
	assert.Contains(t, syncCmd.Long, "Lingualeo")
}

func TestSyncCmd_NotConfigured(t *testing.T) {
	withServices(t, nil, nil, nil)

	_, err := executeCommand(t, "sync")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync service not configured")
}

func TestSyncCmd_RejectsArgs(t *testing.T) {
	withServices(t, &mockSyncOrchestrator{}, nil, nil)

	_, err := executeCommand(t, "sync", "extra")
	assert.Error(t, err)
}

func TestSyncCmd_PrintsSummary(t *testing.T) {
	mock := &mockSyncOrchestrator{run: &domain.SyncRun{
		ID:       "run-1",
		Status:   domain.RunSucceeded,
		Counters: domain.SyncCounters{NewWords: 2, ExistingWords: 3},
	}}
	withServices(t, mock, nil, nil)

	out, err := executeCommand(t, "sync")

	require.NoError(t, err)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, out, "Added 2 words, skipped 3 words")
	assert.Contains(t, out, "Run run-1")
}

func TestSyncCmd_NoJournalHidesRunID(t *testing.T) {
	mock := &mockSyncOrchestrator{run: &domain.SyncRun{ID: "run-1"}}
	withServices(t, mock, nil, nil)

	out, err := executeCommand(t, "sync", "--no-journal")

	require.NoError(t, err)
	assert.Contains(t, out, "Added 0 words, skipped 0 words")
	assert.NotContains(t, out, "Run run-1")
}

func TestSyncCmd_FailureReportsPartialCounters(t *testing.T) {
	mock := &mockSyncOrchestrator{
		run: &domain.SyncRun{ID: "run-1", Counters: domain.SyncCounters{NewWords: 1}},
		err: errors.New("add word: boom"),
	}
	withServices(t, mock, nil, nil)

	out, err := executeCommand(t, "sync")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync failed")
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, out, "Added 1 words, skipped 0 words before the failure")
}

func TestSyncCmd_FailureWithoutProgress(t *testing.T) {
	mock := &mockSyncOrchestrator{
		run: &domain.SyncRun{ID: "run-1"},
		err: domain.NewAuthError(domain.PlatformSkyeng, "auth failed"),
	}
	withServices(t, mock, nil, nil)

	out, err := executeCommand(t, "sync")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
	assert.NotContains(t, out, "before the failure")
}

func TestSyncCmd_BuilderReceivesOptionsAndProgress(t *testing.T) {
	b := &fakeBuilder{
		sync: &mockSyncOrchestrator{run: &domain.SyncRun{
			ID:       "run-9",
			Counters: domain.SyncCounters{NewWords: 1, ExistingWords: 1},
		}},
		beforeRun: func(env SyncEnv) {
			env.Progress.WordSetFetched(domain.WordSet{ID: 1, Title: "Animals"}, 2)
			env.Progress.AddingStarted()
			env.Progress.WordProcessed(domain.Meaning{Text: "cat"}, true)
			env.Progress.WordProcessed(domain.Meaning{Text: "dog"}, false)
			env.Progress.Finished(domain.SyncCounters{NewWords: 1, ExistingWords: 1})
		},
	}
	withBuilder(t, b)

	out, err := executeCommand(t, "sync", "--batch-size", "7", "--config", "/tmp/vs")

	require.NoError(t, err)
	assert.Equal(t, 7, b.gotOpts.BatchSize)
	assert.Equal(t, "/tmp/vs", b.gotOpts.ConfigDir)
	assert.Equal(t, 1, b.closed)
	assert.Contains(t, out, "Fetched 2 words from \"Animals\" word set\nAdding words to lingualeo.....\nfinish!\n")
	assert.Contains(t, out, "Added 1 words, skipped 1 words")
}

func TestSyncCmd_BuilderPromptsForPassword(t *testing.T) {
	var got string
	b := &fakeBuilder{sync: &mockSyncOrchestrator{run: &domain.SyncRun{}}}
	b.beforeRun = func(env SyncEnv) {
		got, _ = env.Prompt("Skyeng password")
	}
	withBuilder(t, b)

	out, err := executeCommandWithInput(t, "hunter2\n", "sync")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.Contains(t, out, "Skyeng password: ")
	assert.NotContains(t, out, "hunter2")
}

func TestSyncCmd_BuilderError(t *testing.T) {
	b := &fakeBuilder{buildErr: errors.New("skyeng username is not configured")}
	withBuilder(t, b)

	_, err := executeCommand(t, "sync")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "skyeng username is not configured")
	assert.Equal(t, 0, b.closed)
}
