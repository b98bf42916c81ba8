package skyeng

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

type wordSetPayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type wordPayload struct {
	ID        int64 `json:"id"`
	MeaningID int64 `json:"meaningId"`
}

type meaningPayload struct {
	ID          meaningID `json:"id"`
	Text        string    `json:"text"`
	Translation struct {
		Text string `json:"text"`
	} `json:"translation"`
}

// meaningID accepts the id as either a JSON number or a string.
type meaningID string

func (m *meaningID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = meaningID(s)
		return nil
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("meaning id: %w", err)
	}
	*m = meaningID(n.String())
	return nil
}

// ListWordSets returns all of the learner's word sets in server order.
func (c *Client) ListWordSets(ctx context.Context) ([]domain.WordSet, error) {
	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}

	payloads, err := fetchPages[wordSetPayload](ctx, c, sess, c.cfg.wordSetsURL(), wordSetsSchema)
	if err != nil {
		return nil, fmt.Errorf("list word sets: %w", err)
	}

	sets := make([]domain.WordSet, 0, len(payloads))
	for _, p := range payloads {
		sets = append(sets, domain.WordSet{ID: p.ID, Title: p.Title})
	}
	logger.Debug("Listed %d word sets", len(sets))
	return sets, nil
}

// ListWords returns the words of one word set in server order.
func (c *Client) ListWords(ctx context.Context, wordSetID int64) ([]domain.Word, error) {
	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/for-training/v1/wordsets/%d/words.json", c.cfg.WordsURL, wordSetID)
	payloads, err := fetchPages[wordPayload](ctx, c, sess, endpoint, wordsSchema)
	if err != nil {
		return nil, fmt.Errorf("list words of set %d: %w", wordSetID, err)
	}

	words := make([]domain.Word, 0, len(payloads))
	for _, p := range payloads {
		words = append(words, domain.Word{ID: p.ID, MeaningID: p.MeaningID})
	}
	return words, nil
}

// GetMeanings resolves meaning ids with one request, returning meanings in
// response order with text and translation trimmed. An empty input makes no request.
func (c *Client) GetMeanings(ctx context.Context, meaningIDs []int64) ([]domain.Meaning, error) {
	sess, err := c.requireSession()
	if err != nil {
		return nil, err
	}
	if len(meaningIDs) == 0 {
		return nil, nil
	}

	ids := make([]string, len(meaningIDs))
	for i, id := range meaningIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	u, err := url.Parse(c.cfg.meaningsURL())
	if err != nil {
		return nil, fmt.Errorf("parse meanings endpoint: %w", err)
	}
	q := u.Query()
	q.Set("ids", strings.Join(ids, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build meanings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var payloads []meaningPayload
	if err := c.req.DoJSON(sess.http, req, meaningsSchema, &payloads); err != nil {
		return nil, fmt.Errorf("get meanings: %w", err)
	}

	meanings := make([]domain.Meaning, 0, len(payloads))
	for _, p := range payloads {
		meanings = append(meanings, domain.Meaning{
			ID:          string(p.ID),
			Text:        strings.TrimSpace(p.Text),
			Translation: strings.TrimSpace(p.Translation.Text),
		})
	}
	return meanings, nil
}
