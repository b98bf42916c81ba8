package skyeng

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/vocabsync/internal/connectors/webapi"
)

// pageMeta is the listing metadata; only lastPage drives pagination.
type pageMeta struct {
	Total    int `json:"total"`
	LastPage int `json:"lastPage"`
	PageSize int `json:"pageSize"`
}

// page is one response of a paginated listing endpoint.
type page[T any] struct {
	Meta pageMeta `json:"meta"`
	Data []T      `json:"data"`
}

// pageFetcher returns one page by its 1-based number.
type pageFetcher[T any] func(ctx context.Context, number int) (page[T], error)

// walkPages drains a listing from page 1 onwards, concatenating data in order.
// lastPage is taken from the first response only and never re-read. The walk
// stops once the current page is >= lastPage, so a lastPage below 1 yields
// exactly one request.
func walkPages[T any](ctx context.Context, fetch pageFetcher[T]) ([]T, error) {
	var items []T
	lastPage := 0

	for number := 1; ; number++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p, err := fetch(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", number, err)
		}
		items = append(items, p.Data...)

		if number == 1 {
			lastPage = p.Meta.LastPage
		}
		if number >= lastPage {
			return items, nil
		}
	}
}

// fetchPages walks a listing endpoint scoped to the session's learner.
func fetchPages[T any](ctx context.Context, c *Client, sess *session, endpoint string, schema *webapi.Schema) ([]T, error) {
	return walkPages(ctx, func(ctx context.Context, number int) (page[T], error) {
		var p page[T]

		u, err := url.Parse(endpoint)
		if err != nil {
			return p, fmt.Errorf("parse endpoint: %w", err)
		}
		q := u.Query()
		q.Set("studentId", strconv.FormatInt(sess.userID, 10))
		q.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
		q.Set("page", strconv.Itoa(number))
		u.RawQuery = q.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return p, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		err = c.req.DoJSON(sess.http, req, schema, &p)
		return p, err
	})
}
