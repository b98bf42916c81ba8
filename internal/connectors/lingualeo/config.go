package lingualeo

import (
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultAPIURL is the production API host.
const DefaultAPIURL = "https://api.lingualeo.com"

// Config holds the platform endpoint.
type Config struct {
	// APIURL is the API base URL. Empty means DefaultAPIURL.
	APIURL string
}

func (c Config) withDefaults() Config {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	return c
}

func (c Config) loginURL() string      { return c.APIURL + "/api/login" }
func (c Config) translatesURL() string { return c.APIURL + "/gettranslates" }
func (c Config) addWordURL() string    { return c.APIURL + "/addword" }
