// Package domain defines the core business entities for vocabsync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - WordSet, Word: vocabulary collections read from the source platform
//   - Meaning: the unit written to the target platform's dictionary
//   - SyncCounters: per-run added/skipped counts
//   - SyncRun, AddedWord: run journal records
//   - TransportError, ValidationError, PlatformError: platform failure kinds
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
