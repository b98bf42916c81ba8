package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
)

// Ensure progressPrinter implements the interface.
var _ driven.ProgressReporter = (*progressPrinter)(nil)

// progressPrinter writes sync progress as plain console lines:
// one line per word set, then the adding banner followed by a dot per
// processed word on the same line.
type progressPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{w: w}
}

func (p *progressPrinter) WordSetFetched(set domain.WordSet, wordCount int) {
	p.printf("Fetched %d words from %q word set\n", wordCount, set.Title)
}

func (p *progressPrinter) AddingStarted() {
	p.printf("Adding words to lingualeo...")
}

func (p *progressPrinter) WordProcessed(_ domain.Meaning, _ bool) {
	p.printf(".")
}

func (p *progressPrinter) Finished(_ domain.SyncCounters) {
	p.printf("\nfinish!\n")
}

func (p *progressPrinter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, format, args...)
}
