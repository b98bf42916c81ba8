package skyeng

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/vocabsync/internal/connectors/webapi"
	"github.com/custodia-labs/vocabsync/internal/core/domain"
	"github.com/custodia-labs/vocabsync/internal/core/ports/driven"
	"github.com/custodia-labs/vocabsync/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.VocabularySource = (*Client)(nil)

// ClientOptions configures a Client.
type ClientOptions struct {
	Config Config
	// HTTPClient supplies the transport and timeout. Its cookie jar is not used;
	// every Client owns a fresh jar for its login session.
	HTTPClient *http.Client
	// Limiter paces requests. Nil means unpaced.
	Limiter *rate.Limiter
}

// Client is an authenticated connection to Skyeng.
// It is not safe for concurrent use; calls are made one at a time.
type Client struct {
	cfg  Config
	base *http.Client
	req  webapi.Requester
	sess *session
}

// session is the state published once the whole handshake succeeded.
type session struct {
	userID int64
	http   *http.Client
}

// NewClient creates a Skyeng client. No request is made until Authenticate.
func NewClient(opts ClientOptions) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	base := &http.Client{Timeout: DefaultTimeout, Jar: jar}
	if opts.HTTPClient != nil {
		base.Transport = opts.HTTPClient.Transport
		if opts.HTTPClient.Timeout > 0 {
			base.Timeout = opts.HTTPClient.Timeout
		}
	}

	return &Client{
		cfg:  opts.Config.withDefaults(),
		base: base,
		req:  webapi.Requester{Platform: domain.PlatformSkyeng, Limiter: opts.Limiter},
	}, nil
}

// UserID returns the learner id resolved during authentication, or 0.
func (c *Client) UserID() int64 {
	if c.sess == nil {
		return 0
	}
	return c.sess.userID
}

// Authenticate logs in with the three step handshake.
// Any failing step aborts and leaves the client unauthenticated.
func (c *Client) Authenticate(ctx context.Context, creds domain.Credentials) error {
	c.sess = nil
	if err := creds.Validate(); err != nil {
		return err
	}

	logger.Section("Skyeng authentication")

	csrfToken, err := c.fetchCSRFToken(ctx)
	if err != nil {
		return err
	}

	if err := c.submitLogin(ctx, creds, csrfToken); err != nil {
		return err
	}

	token, err := c.exchangeToken(ctx)
	if err != nil {
		return err
	}

	authed := c.bearerClient(token)
	userID, err := c.fetchUserID(ctx, authed)
	if err != nil {
		return err
	}

	c.sess = &session{userID: userID, http: authed}
	logger.Info("Authenticated on skyeng as user %d", userID)
	return nil
}

// fetchCSRFToken loads the login page and scrapes its anti-forgery token.
func (c *Client) fetchCSRFToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.loginPageURL(), nil)
	if err != nil {
		return "", fmt.Errorf("build login page request: %w", err)
	}

	body, err := c.req.Do(c.base, req)
	if err != nil {
		return "", err
	}

	token, ok := extractCSRFToken(bytes.NewReader(body))
	if !ok {
		return "", domain.NewAuthError(domain.PlatformSkyeng, "csrf token not found")
	}
	return token, nil
}

// submitLogin posts the credentials with the anti-forgery token.
func (c *Client) submitLogin(ctx context.Context, creds domain.Credentials, csrfToken string) error {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)
	form.Set(csrfFieldName, csrfToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.loginSubmitURL(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.req.DoJSON(c.base, req, loginSubmitSchema, &resp); err != nil {
		if domain.IsTransport(err) {
			return &domain.PlatformError{
				Platform: domain.PlatformSkyeng,
				Op:       "auth",
				Message:  "auth failed",
				Err:      errors.Join(domain.ErrAuthInvalid, err),
			}
		}
		return err
	}
	if !resp.Success {
		return domain.NewAuthError(domain.PlatformSkyeng, "auth failed")
	}
	return nil
}

// exchangeToken trades the logged-in session cookies for a bearer token.
func (c *Client) exchangeToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.tokenURL(), nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.req.DoJSON(c.base, req, tokenSchema, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// fetchUserID resolves the learner id from the profile.
func (c *Client) fetchUserID(ctx context.Context, authed *http.Client) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.userInfoURL(), nil)
	if err != nil {
		return 0, fmt.Errorf("build user info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var resp struct {
		Profile struct {
			UserID int64 `json:"userId"`
		} `json:"profile"`
	}
	if err := c.req.DoJSON(authed, req, userInfoSchema, &resp); err != nil {
		return 0, err
	}
	return resp.Profile.UserID, nil
}

// bearerClient returns an HTTP client that sends the token on every request.
func (c *Client) bearerClient(token string) *http.Client {
	base := c.base.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &http.Client{
		Timeout:   c.base.Timeout,
		Jar:       c.base.Jar,
		Transport: &oauth2.Transport{Source: ts, Base: base},
	}
}

// requireSession returns the session or domain.ErrAuthRequired.
func (c *Client) requireSession() (*session, error) {
	if c.sess == nil {
		return nil, fmt.Errorf("%s: %w", domain.PlatformSkyeng, domain.ErrAuthRequired)
	}
	return c.sess, nil
}
