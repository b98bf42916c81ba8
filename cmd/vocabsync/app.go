package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/vocabsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vocabsync/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vocabsync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/vocabsync/internal/adapters/driving/cli"
	"github.com/custodia-labs/vocabsync/internal/connectors/lingualeo"
	"github.com/custodia-labs/vocabsync/internal/connectors/skyeng"
	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
	"github.com/custodia-labs/vocabsync/internal/core/services"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

// Ensure app implements the interface.
var _ cli.Builder = app{}

// app builds the production services from config.toml and the environment.
type app struct{}

func (app) ConfigStore(opts cli.Options) (driven.ConfigStore, error) {
	return loadConfig(opts)
}

func (app) SyncOrchestrator(
	_ context.Context,
	opts cli.Options,
	env cli.SyncEnv,
) (driving.SyncOrchestrator, io.Closer, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	settings := cfg.SyncSettings()
	if opts.BatchSize > 0 {
		settings.BatchSize = opts.BatchSize
	}
	settings.BatchSize = clampBatchSize(settings.BatchSize)
	if opts.NoJournal {
		settings.Journal = false
	}

	sourceCreds, err := resolveCredentials(cfg, file.SectionSkyeng, "Skyeng", env.Prompt)
	if err != nil {
		return nil, nil, err
	}
	targetCreds, err := resolveCredentials(cfg, file.SectionLingualeo, "Lingualeo", env.Prompt)
	if err != nil {
		return nil, nil, err
	}

	// One limiter paces both platforms together.
	limiter := newLimiter(settings.RequestsPerSecond)

	source, err := skyeng.NewClient(skyeng.ClientOptions{
		Config: skyeng.Config{
			IDURL:         cfg.Endpoint(file.SectionSkyeng, "id_url"),
			RoomsURL:      cfg.Endpoint(file.SectionSkyeng, "rooms_url"),
			WordsURL:      cfg.Endpoint(file.SectionSkyeng, "words_url"),
			DictionaryURL: cfg.Endpoint(file.SectionSkyeng, "dictionary_url"),
			PageSize:      settings.PageSize,
		},
		Limiter: limiter,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create skyeng client: %w", err)
	}

	target, err := lingualeo.NewClient(lingualeo.ClientOptions{
		Config:  lingualeo.Config{APIURL: cfg.Endpoint(file.SectionLingualeo, "api_url")},
		Limiter: limiter,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create lingualeo client: %w", err)
	}

	runs, closer, err := openJournal(opts, settings.Journal)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("sync settings: batch=%d page=%d rps=%g journal=%t",
		settings.BatchSize, settings.PageSize, settings.RequestsPerSecond, settings.Journal)

	orchestrator := services.NewSyncOrchestrator(source, target, runs, env.Progress, services.SyncOptions{
		SourceCredentials: sourceCreds,
		TargetCredentials: targetCreds,
		BatchSize:         settings.BatchSize,
	})
	return orchestrator, closer, nil
}

func (app) RunHistory(opts cli.Options) (driving.RunHistory, io.Closer, error) {
	runs, closer, err := openJournal(opts, true)
	if err != nil {
		return nil, nil, err
	}
	return services.NewHistoryService(runs), closer, nil
}

func loadConfig(opts cli.Options) (*file.ConfigStore, error) {
	if err := file.LoadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}
	cfg, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config: %s", cfg.Path())
	return cfg, nil
}

// openJournal opens the SQLite journal, or an in-memory one when disabled.
// The journal lives next to config.toml when --config is given.
func openJournal(opts cli.Options, enabled bool) (driven.RunStore, io.Closer, error) {
	if !enabled {
		return memory.NewRunStore(), nopCloser{}, nil
	}

	dataDir := ""
	if opts.ConfigDir != "" {
		dataDir = filepath.Join(opts.ConfigDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open run journal: %w", err)
	}
	logger.Debug("journal: %s", store.Path())
	return store, store, nil
}

// resolveCredentials reads a platform's credentials, prompting for a
// missing password when a prompt is available.
func resolveCredentials(
	cfg *file.ConfigStore,
	section, label string,
	prompt cli.PasswordPrompt,
) (domain.Credentials, error) {
	creds := cfg.Credentials(section)
	if creds.Username == "" {
		return domain.Credentials{}, fmt.Errorf(
			"%s username is not set: add %s.username to %s or export %s%s_USERNAME",
			label, section, cfg.Path(), file.EnvPrefix, strings.ToUpper(section))
	}

	if creds.Password == "" {
		if prompt == nil {
			return domain.Credentials{}, fmt.Errorf("%s password is not set", label)
		}
		password, err := prompt(fmt.Sprintf("%s password for %s", label, creds.Username))
		if err != nil {
			return domain.Credentials{}, fmt.Errorf("read %s password: %w", label, err)
		}
		creds.Password = password
	}

	if err := creds.Validate(); err != nil {
		return domain.Credentials{}, fmt.Errorf("%s: %w", label, err)
	}
	return creds, nil
}

// clampBatchSize caps a lookup batch at the most ids the meanings endpoint accepts.
func clampBatchSize(n int) int {
	if n > skyeng.MaxMeaningsPerRequest {
		logger.Warn("batch size %d exceeds the lookup limit, using %d", n, skyeng.MaxMeaningsPerRequest)
		return skyeng.MaxMeaningsPerRequest
	}
	return n
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
