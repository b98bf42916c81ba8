package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy Skyeng words into the Lingualeo dictionary",
	Long: `Logs in to both platforms, lists every Skyeng word set, resolves each
word to its meaning and adds it to Lingualeo unless it is already there.
Credentials come from the config file, VOCABSYNC_* environment variables
or an interactive prompt.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	orchestrator, closer, err := resolveSyncOrchestrator(cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	run, err := orchestrator.Run(cmd.Context())
	if err != nil {
		if run != nil && run.Counters.Total() > 0 {
			cmd.Println()
			cmd.Println(warningStyle.Render(summary(run.Counters) + " before the failure"))
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Println(successStyle.Render(summary(run.Counters)))
	if run.ID != "" && !opts.NoJournal {
		cmd.Println(mutedStyle.Render("Run " + run.ID))
	}
	return nil
}

func summary(c domain.SyncCounters) string {
	return fmt.Sprintf("Added %d words, skipped %d words", c.NewWords, c.ExistingWords)
}

func resolveSyncOrchestrator(cmd *cobra.Command) (driving.SyncOrchestrator, io.Closer, error) {
	if syncOrchestrator != nil {
		return syncOrchestrator, nopCloser{}, nil
	}
	if builder == nil {
		return nil, nil, errors.New("sync service not configured")
	}

	env := SyncEnv{
		Progress: newProgressPrinter(cmd.OutOrStdout()),
		Prompt:   promptPassword(cmd),
	}
	orchestrator, closer, err := builder.SyncOrchestrator(cmd.Context(), opts, env)
	if err != nil {
		return nil, nil, err
	}
	return orchestrator, closer, nil
}
