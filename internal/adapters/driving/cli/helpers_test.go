package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driving"
)

// executeCommand runs the root command with args and returns combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeCommandWithInput(t, "", args...)
}

func executeCommandWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	opts = Options{}
	historyLimit = 0

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewBufferString(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// withServices installs prebuilt services and restores the previous ones.
func withServices(t *testing.T, s driving.SyncOrchestrator, h driving.RunHistory, c driven.ConfigStore) {
	t.Helper()
	oldSync, oldHistory, oldConfig, oldBuilder := syncOrchestrator, runHistory, configStore, builder
	syncOrchestrator, runHistory, configStore, builder = s, h, c, nil
	t.Cleanup(func() {
		syncOrchestrator, runHistory, configStore, builder = oldSync, oldHistory, oldConfig, oldBuilder
	})
}

// withBuilder installs b with no prebuilt services.
func withBuilder(t *testing.T, b Builder) {
	t.Helper()
	withServices(t, nil, nil, nil)
	builder = b
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var _ io.Closer = closerFunc(nil)
