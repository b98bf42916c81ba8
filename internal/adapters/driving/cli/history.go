package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sync runs",
	Long: `Shows the run journal: when each sync ran, how it ended and how many
words it added or skipped. The journal is informational only and never
affects what the next sync does.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a sync run and the words it added",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of runs to show (default 20)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	history, closer, err := resolveRunHistory()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	runs, err := history.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No sync runs recorded.")
		return nil
	}

	cmd.Println(titleStyle.Render("Recent sync runs"))
	cmd.Println()
	for _, run := range runs {
		cmd.Printf("  %s  %s  %s  added %d, skipped %d  %s\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			renderStatus(run.Status),
			run.Counters.NewWords,
			run.Counters.ExistingWords,
			mutedStyle.Render(formatDuration(run.Duration())),
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	history, closer, err := resolveRunHistory()
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	ctx := cmd.Context()
	run, err := history.Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run %s not found", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	words, err := history.AddedWords(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("failed to list added words: %w", err)
	}

	cmd.Println(titleStyle.Render("Run " + run.ID))
	cmd.Printf("  Started:   %s\n", run.StartedAt.Local().Format(time.RFC1123))
	cmd.Printf("  Status:    %s\n", renderStatus(run.Status))
	cmd.Printf("  Duration:  %s\n", formatDuration(run.Duration()))
	cmd.Printf("  Word sets: %d\n", run.WordSets)
	cmd.Printf("  Meanings:  %d\n", run.MeaningIDs)
	cmd.Printf("  %s\n", summary(run.Counters))
	if run.Error != "" {
		cmd.Printf("  Error:     %s\n", errorStyle.Render(run.Error))
	}

	if len(words) == 0 {
		return nil
	}
	cmd.Println()
	cmd.Println(titleStyle.Render("Added words"))
	for _, w := range words {
		cmd.Printf("  %s  %s\n", w.Text, mutedStyle.Render(w.Translation))
	}
	return nil
}

func renderStatus(status domain.RunStatus) string {
	switch status {
	case domain.RunSucceeded:
		return successStyle.Render(string(status))
	case domain.RunFailed:
		return errorStyle.Render(string(status))
	default:
		return warningStyle.Render(string(status))
	}
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}

func resolveRunHistory() (driving.RunHistory, io.Closer, error) {
	if runHistory != nil {
		return runHistory, nopCloser{}, nil
	}
	if builder == nil {
		return nil, nil, errors.New("history service not configured")
	}
	return builder.RunHistory(opts)
}
