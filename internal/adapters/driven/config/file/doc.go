// Package file stores vocabsync settings in config.toml.
//
// ConfigStore reads and writes the file as TOML tables addressed by dotted
// keys. Credentials and Endpoint layer VOCABSYNC_* environment variables,
// optionally loaded from a .env file, over the file values.
package file
