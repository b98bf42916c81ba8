package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/vocabsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vocabsync/internal/adapters/driving/cli"
	"github.com/custodia-labs/vocabsync/internal/connectors/skyeng"
	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))
}

func TestResolveCredentials_FromConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[skyeng]\nusername = \"u\"\npassword = \"p\"\n")
	cfg, err := file.NewConfigStore(dir)
	require.NoError(t, err)

	creds, err := resolveCredentials(cfg, file.SectionSkyeng, "Skyeng", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.Credentials{Username: "u", Password: "p"}, creds)
}

func TestResolveCredentials_MissingUsername(t *testing.T) {
	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, err = resolveCredentials(cfg, file.SectionLingualeo, "Lingualeo", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VOCABSYNC_LINGUALEO_USERNAME")
}

func TestResolveCredentials_PromptsForPassword(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[lingualeo]\nusername = \"learner\"\n")
	cfg, err := file.NewConfigStore(dir)
	require.NoError(t, err)

	var label string
	prompt := func(l string) (string, error) {
		label = l
		return "typed", nil
	}

	creds, err := resolveCredentials(cfg, file.SectionLingualeo, "Lingualeo", prompt)

	require.NoError(t, err)
	assert.Equal(t, "typed", creds.Password)
	assert.Equal(t, "Lingualeo password for learner", label)
}

func TestResolveCredentials_EmptyPromptedPassword(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[skyeng]\nusername = \"u\"\n")
	cfg, err := file.NewConfigStore(dir)
	require.NoError(t, err)

	_, err = resolveCredentials(cfg, file.SectionSkyeng, "Skyeng", func(string) (string, error) { return "", nil })

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveCredentials_PromptError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[skyeng]\nusername = \"u\"\n")
	cfg, err := file.NewConfigStore(dir)
	require.NoError(t, err)

	_, err = resolveCredentials(cfg, file.SectionSkyeng, "Skyeng", func(string) (string, error) {
		return "", errors.New("stdin closed")
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin closed")
}

func TestApp_SyncOrchestrator_OpensJournal(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[skyeng]
username = "student"
password = "p1"

[lingualeo]
username = "learner"
password = "p2"
api_url = "http://127.0.0.1:1"
`)

	orch, closer, err := app{}.SyncOrchestrator(context.Background(), cli.Options{ConfigDir: dir}, cli.SyncEnv{})
	require.NoError(t, err)
	require.NotNil(t, orch)
	defer closer.Close()

	_, err = os.Stat(filepath.Join(dir, "data", "journal.db"))
	assert.NoError(t, err)
}

func TestApp_SyncOrchestrator_NoJournal(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOCABSYNC_SKYENG_USERNAME", "student")
	t.Setenv("VOCABSYNC_SKYENG_PASSWORD", "p1")
	t.Setenv("VOCABSYNC_LINGUALEO_USERNAME", "learner")
	t.Setenv("VOCABSYNC_LINGUALEO_PASSWORD", "p2")

	orch, closer, err := app{}.SyncOrchestrator(context.Background(), cli.Options{ConfigDir: dir, NoJournal: true}, cli.SyncEnv{})
	require.NoError(t, err)
	require.NotNil(t, orch)
	assert.NoError(t, closer.Close())

	_, err = os.Stat(filepath.Join(dir, "data", "journal.db"))
	assert.True(t, os.IsNotExist(err))
}

func TestApp_SyncOrchestrator_MissingCredentials(t *testing.T) {
	_, _, err := app{}.SyncOrchestrator(context.Background(), cli.Options{ConfigDir: t.TempDir()}, cli.SyncEnv{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Skyeng username is not set")
}

func TestApp_RunHistory(t *testing.T) {
	dir := t.TempDir()

	history, closer, err := app{}.RunHistory(cli.Options{ConfigDir: dir})
	require.NoError(t, err)
	defer closer.Close()

	runs, err := history.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestApp_ConfigStore_LoadsEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("VOCABSYNC_SKYENG_USERNAME=from-dotenv\n"), 0600))
	t.Setenv("VOCABSYNC_SKYENG_USERNAME", "")
	require.NoError(t, os.Unsetenv("VOCABSYNC_SKYENG_USERNAME"))
	t.Cleanup(func() { _ = os.Unsetenv("VOCABSYNC_SKYENG_USERNAME") })

	store, err := app{}.ConfigStore(cli.Options{ConfigDir: t.TempDir(), EnvFile: envFile})
	require.NoError(t, err)

	cfg, ok := store.(*file.ConfigStore)
	require.True(t, ok)
	assert.Equal(t, "from-dotenv", cfg.Credentials(file.SectionSkyeng).Username)
}

func TestNewLimiter(t *testing.T) {
	assert.Equal(t, rate.Inf, newLimiter(0).Limit())
	assert.Equal(t, rate.Inf, newLimiter(-1).Limit())
	assert.Equal(t, rate.Limit(2), newLimiter(2).Limit())
}

func TestClampBatchSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{7, 7},
		{skyeng.MaxMeaningsPerRequest, skyeng.MaxMeaningsPerRequest},
		{500, skyeng.MaxMeaningsPerRequest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, clampBatchSize(tt.in), "input %d", tt.in)
	}
}
