package webapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 10 * 1024 * 1024

// Requester performs single-attempt calls on behalf of one platform.
// The zero Limiter means requests are not paced.
type Requester struct {
	Platform string
	Limiter  *rate.Limiter
}

// Do sends req and returns the body of a 200 response.
// Any other status is a domain.TransportError. The request is never retried.
func (r Requester) Do(client *http.Client, req *http.Request) ([]byte, error) {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(req.Context()); err != nil {
			return nil, fmt.Errorf("pacing wait: %w", err)
		}
	}

	target := RedactURL(req.URL)
	resp, err := client.Do(req)
	if err != nil {
		// url.Error embeds the full URL, including credentials in query strings.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%s: %s %s: %w", r.Platform, req.Method, target, err)
	}
	defer resp.Body.Close()

	logger.Debug("%s %s -> %d", req.Method, target, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{
			Platform:   r.Platform,
			StatusCode: resp.StatusCode,
			URL:        target,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read body from %s: %w", r.Platform, target, err)
	}
	return body, nil
}

// DoJSON sends req, validates the body against schema and decodes it into out.
func (r Requester) DoJSON(client *http.Client, req *http.Request, schema *Schema, out any) error {
	body, err := r.Do(client, req)
	if err != nil {
		return err
	}
	return r.Decode(body, schema, out)
}

// Decode validates body against schema before decoding it into out,
// so no field is read from a body of the wrong shape.
func (r Requester) Decode(body []byte, schema *Schema, out any) error {
	instance, err := parseInstance(body)
	if err != nil {
		return r.validationError(schema, err)
	}
	if err := schema.Validate(instance); err != nil {
		return r.validationError(schema, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return r.validationError(schema, err)
	}
	return nil
}

func (r Requester) validationError(schema *Schema, err error) error {
	return &domain.ValidationError{
		Platform: r.Platform,
		Schema:   schema.Name(),
		Err:      err,
	}
}
