package file

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/vocabsync/internal/core/domain"
)

// Config sections.
const (
	SectionSkyeng    = "skyeng"
	SectionLingualeo = "lingualeo"
	SectionSync      = "sync"
)

// EnvPrefix prefixes environment overrides, e.g. VOCABSYNC_SKYENG_PASSWORD.
const EnvPrefix = "VOCABSYNC_"

// SyncSettings are the [sync] table values with defaults applied.
type SyncSettings struct {
	// BatchSize caps meaning ids per lookup request.
	BatchSize int
	// PageSize is requested from paginated listings.
	PageSize int
	// RequestsPerSecond paces requests; 0 disables pacing.
	RequestsPerSecond float64
	// Journal enables the run journal.
	Journal bool
}

// Defaults for SyncSettings.
const (
	DefaultBatchSize = 50
	DefaultPageSize  = 100
)

// LoadEnvFile loads KEY=value pairs from path into the process environment.
// Variables already set are kept.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Credentials returns the username and password of a platform section.
// VOCABSYNC_<SECTION>_USERNAME and VOCABSYNC_<SECTION>_PASSWORD take precedence
// over the file. Missing values are left empty for the caller to resolve.
func (s *ConfigStore) Credentials(section string) domain.Credentials {
	return domain.Credentials{
		Username: s.lookup(section, "username"),
		Password: s.lookup(section, "password"),
	}
}

// Endpoint returns an optional base URL override such as skyeng.words_url.
func (s *ConfigStore) Endpoint(section, key string) string {
	return s.lookup(section, key)
}

// SyncSettings returns the [sync] table with defaults for absent keys.
func (s *ConfigStore) SyncSettings() SyncSettings {
	settings := SyncSettings{
		BatchSize:         s.GetInt(SectionSync + ".batch_size"),
		PageSize:          s.GetInt(SectionSync + ".page_size"),
		RequestsPerSecond: s.GetFloat(SectionSync + ".requests_per_second"),
		Journal:           true,
	}

	if settings.BatchSize <= 0 {
		settings.BatchSize = DefaultBatchSize
	}
	if settings.PageSize <= 0 {
		settings.PageSize = DefaultPageSize
	}
	if settings.RequestsPerSecond < 0 {
		settings.RequestsPerSecond = 0
	}
	if _, ok := s.Get(SectionSync + ".journal"); ok {
		settings.Journal = s.GetBool(SectionSync + ".journal")
	}
	return settings
}

// lookup reads section.key, preferring the environment override.
func (s *ConfigStore) lookup(section, key string) string {
	if v, ok := os.LookupEnv(envName(section, key)); ok && v != "" {
		return v
	}
	return s.GetString(section + "." + key)
}

func envName(section, key string) string {
	return EnvPrefix + strings.ToUpper(section) + "_" + strings.ToUpper(key)
}
