// Package cli provides the vocabsync command line interface built on cobra.
//
// Commands obtain their services through a Builder supplied by the binary.
// Services are built lazily per command so that read-only commands such as
// history never ask for platform passwords.
package cli
