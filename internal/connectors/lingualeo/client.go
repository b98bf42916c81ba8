package lingualeo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/vocabsync/internal/connectors/webapi"
	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Dictionary = (*Client)(nil)

// ClientOptions configures a Client.
type ClientOptions struct {
	Config Config
	// HTTPClient supplies the transport and timeout. Its cookie jar is not used.
	HTTPClient *http.Client
	// Limiter paces requests. Nil means unpaced.
	Limiter *rate.Limiter
}

// Client is an authenticated connection to Lingualeo.
type Client struct {
	cfg  Config
	http *http.Client
	req  webapi.Requester
	sess *session
}

// session marks a successful login; cookies live in the client's jar.
type session struct {
	userID int64
}

// NewClient creates a Lingualeo client. No request is made until Authenticate.
func NewClient(opts ClientOptions) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	hc := &http.Client{Timeout: DefaultTimeout, Jar: jar}
	if opts.HTTPClient != nil {
		hc.Transport = opts.HTTPClient.Transport
		if opts.HTTPClient.Timeout > 0 {
			hc.Timeout = opts.HTTPClient.Timeout
		}
	}

	return &Client{
		cfg:  opts.Config.withDefaults(),
		http: hc,
		req:  webapi.Requester{Platform: domain.PlatformLingualeo, Limiter: opts.Limiter},
	}, nil
}

// UserID returns the user id resolved during authentication, or 0.
func (c *Client) UserID() int64 {
	if c.sess == nil {
		return 0
	}
	return c.sess.userID
}

// Authenticate logs in and requires a numeric user id in the response.
func (c *Client) Authenticate(ctx context.Context, creds domain.Credentials) error {
	c.sess = nil
	if err := creds.Validate(); err != nil {
		return err
	}

	logger.Section("Lingualeo authentication")

	req, err := c.newGet(ctx, c.cfg.loginURL(), url.Values{
		"email":    {creds.Username},
		"password": {creds.Password},
	})
	if err != nil {
		return err
	}

	var resp struct {
		ErrorMsg *string `json:"error_msg"`
		User     *struct {
			UserID json.RawMessage `json:"user_id"`
		} `json:"user"`
	}
	if err := c.req.DoJSON(c.http, req, loginSchema, &resp); err != nil {
		return err
	}

	userID, ok := int64(0), false
	if resp.User != nil {
		userID, ok = parseUserID(resp.User.UserID)
	}
	if !ok {
		msg := "user id missing from login response"
		if resp.ErrorMsg != nil && *resp.ErrorMsg != "" {
			msg = *resp.ErrorMsg
		}
		return domain.NewAuthError(domain.PlatformLingualeo, msg)
	}

	c.sess = &session{userID: userID}
	logger.Info("Authenticated on lingualeo as user %d", c.sess.userID)
	return nil
}

// WordExists reports whether the word is known to the learner: either the
// response flags it globally, or any translation carries a user marker.
// A status other than "ok" is a protocol error, not an unknown word.
func (c *Client) WordExists(ctx context.Context, word string) (bool, error) {
	if err := c.requireSession(); err != nil {
		return false, err
	}

	req, err := c.newGet(ctx, c.cfg.translatesURL(), url.Values{"word": {word}})
	if err != nil {
		return false, err
	}

	var resp struct {
		Status    string `json:"status"`
		IsUser    int64  `json:"is_user"`
		Translate []struct {
			IsUser *int64 `json:"is_user"`
		} `json:"translate"`
	}
	if err := c.req.DoJSON(c.http, req, translatesSchema, &resp); err != nil {
		return false, err
	}

	if resp.Status != "ok" {
		return false, &domain.PlatformError{
			Platform: domain.PlatformLingualeo,
			Op:       "gettranslates",
			Message:  fmt.Sprintf("invalid status %q for url %s", resp.Status, webapi.RedactURL(req.URL)),
		}
	}

	if resp.IsUser != 0 {
		return true, nil
	}
	for _, t := range resp.Translate {
		if t.IsUser != nil {
			return true, nil
		}
	}
	return false, nil
}

// AddWord stores the word with its translation.
// A non-empty error_msg in the response is returned as a PlatformError.
func (c *Client) AddWord(ctx context.Context, word, translation string) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	req, err := c.newGet(ctx, c.cfg.addWordURL(), url.Values{
		"word":  {word},
		"tword": {translation},
	})
	if err != nil {
		return err
	}

	var resp struct {
		ErrorMsg string `json:"error_msg"`
	}
	if err := c.req.DoJSON(c.http, req, addWordSchema, &resp); err != nil {
		return err
	}

	if resp.ErrorMsg != "" {
		return &domain.PlatformError{
			Platform: domain.PlatformLingualeo,
			Op:       "addword",
			Message:  resp.ErrorMsg,
		}
	}
	logger.Debug("Added %q", word)
	return nil
}

// parseUserID accepts only a JSON integer. Null, strings and fractions are rejected.
func parseUserID(raw json.RawMessage) (int64, bool) {
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (c *Client) newGet(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) requireSession() error {
	if c.sess == nil {
		return fmt.Errorf("%s: %w", domain.PlatformLingualeo, domain.ErrAuthRequired)
	}
	return nil
}
