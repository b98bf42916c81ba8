package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

func TestProgressPrinter_Output(t *testing.T) {
	buf := new(bytes.Buffer)
	p := newProgressPrinter(buf)

	p.WordSetFetched(domain.WordSet{ID: 1, Title: "Travel"}, 3)
	p.WordSetFetched(domain.WordSet{ID: 2, Title: "Food"}, 1)
	p.AddingStarted()
	for range 4 {
		p.WordProcessed(domain.Meaning{}, true)
	}
	p.Finished(domain.SyncCounters{NewWords: 4})

	assert.Equal(t,
		"Fetched 3 words from \"Travel\" word set\n"+
			"Fetched 1 words from \"Food\" word set\n"+
			"Adding words to lingualeo.......\nfinish!\n",
		buf.String())
}

func TestReadPassword_FromReader(t *testing.T) {
	got, err := readPassword(strings.NewReader("  s3cret  \nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestReadPassword_NoTrailingNewline(t *testing.T) {
	got, err := readPassword(strings.NewReader("s3cret"))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestReadPassword_Empty(t *testing.T) {
	got, err := readPassword(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
