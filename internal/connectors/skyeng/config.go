package skyeng

import (
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the page size requested from listing endpoints.
	DefaultPageSize = 100

	// MaxMeaningsPerRequest is the practical id limit of the meanings lookup.
	MaxMeaningsPerRequest = 50
)

// Config holds the platform endpoints. Empty fields fall back to production hosts.
type Config struct {
	// IDURL hosts the login page and login submit.
	IDURL string
	// RoomsURL hosts the bearer token exchange.
	RoomsURL string
	// WordsURL hosts the profile, word set and word endpoints.
	WordsURL string
	// DictionaryURL hosts the meanings lookup.
	DictionaryURL string
	// PageSize is sent as pageSize on listing endpoints.
	PageSize int
}

// DefaultConfig returns the production endpoints.
func DefaultConfig() Config {
	return Config{
		IDURL:         "https://id.skyeng.ru",
		RoomsURL:      "https://rooms.vimbox.skyeng.ru",
		WordsURL:      "https://api.words.skyeng.ru",
		DictionaryURL: "https://dictionary.skyeng.ru",
		PageSize:      DefaultPageSize,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	c.IDURL = orDefault(c.IDURL, def.IDURL)
	c.RoomsURL = orDefault(c.RoomsURL, def.RoomsURL)
	c.WordsURL = orDefault(c.WordsURL, def.WordsURL)
	c.DictionaryURL = orDefault(c.DictionaryURL, def.DictionaryURL)
	if c.PageSize <= 0 {
		c.PageSize = def.PageSize
	}
	return c
}

func orDefault(value, def string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if value == "" {
		return def
	}
	return value
}

func (c Config) loginPageURL() string   { return c.IDURL + "/ru/frame/login" }
func (c Config) loginSubmitURL() string { return c.IDURL + "/ru/frame/login-submit" }
func (c Config) tokenURL() string       { return c.RoomsURL + "/users/api/v1/auth/auth" }
func (c Config) userInfoURL() string    { return c.WordsURL + "/api/v1/userInfo.json" }
func (c Config) wordSetsURL() string    { return c.WordsURL + "/api/for-vimbox/v1/wordsets.json" }
func (c Config) meaningsURL() string    { return c.DictionaryURL + "/api/for-mobile/v1/meanings" }
