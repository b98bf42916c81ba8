package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

// version is overridden at build time.
var version = "dev"

// Options are the global flags shared by all commands.
type Options struct {
	// ConfigDir holds config.toml. Empty means ~/.vocabsync.
	ConfigDir string
	// EnvFile is an optional .env file with credential overrides.
	EnvFile string
	Verbose bool
	// BatchSize overrides sync.batch_size when positive.
	BatchSize int
	// NoJournal disables the persistent run journal.
	NoJournal bool
}

// PasswordPrompt asks the user for a secret labelled by label.
type PasswordPrompt func(label string) (string, error)

// SyncEnv carries per-invocation hooks the sync service is built with.
type SyncEnv struct {
	Progress driven.ProgressReporter
	Prompt   PasswordPrompt
}

// Builder constructs the services behind each command.
// Returned closers are closed when the command finishes.
type Builder interface {
	ConfigStore(opts Options) (driven.ConfigStore, error)
	SyncOrchestrator(ctx context.Context, opts Options, env SyncEnv) (driving.SyncOrchestrator, io.Closer, error)
	RunHistory(opts Options) (driving.RunHistory, io.Closer, error)
}

var (
	opts    Options
	builder Builder

	// Prebuilt services take precedence over the builder.
	syncOrchestrator driving.SyncOrchestrator
	runHistory       driving.RunHistory
	configStore      driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "vocabsync",
	Short: "Mirror your Skyeng vocabulary into Lingualeo",
	Long: `vocabsync copies every word from your Skyeng word sets into your
Lingualeo dictionary. Words already present in Lingualeo are skipped, so
running it again only adds what is new.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(opts.Verbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigDir, "config", "", "config directory (default ~/.vocabsync)")
	flags.StringVar(&opts.EnvFile, "env-file", "", "load credential overrides from a .env file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every platform request")
	flags.IntVar(&opts.BatchSize, "batch-size", 0, "meaning ids per lookup request (default from config)")
	flags.BoolVar(&opts.NoJournal, "no-journal", false, "do not record the run in the journal")
}

// SetBuilder installs the service builder used by commands.
func SetBuilder(b Builder) {
	builder = b
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx attached to every subcommand.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// closeQuietly closes c and logs a failure.
func closeQuietly(c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("close: %v", err)
	}
}
