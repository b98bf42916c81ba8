// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - VocabularySource: Reads word sets, words and meanings (Skyeng)
//   - Dictionary: Checks and adds words in the personal dictionary (Lingualeo)
//   - ConfigStore: Application configuration and credentials
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Sync run journal. Without it, runs are not recorded.
//   - ProgressReporter: Progress events. Without it, the run is silent.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
