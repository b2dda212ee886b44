// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ReferenceExtractor: Extracts resolved image references from markdown
//   - ActionExecutor: Applies a removal action to a batch of files
//   - ExecutorFactory: Selects the executor for a configured action
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Persists run summaries. Without it, `mdprune history`
//     has nothing to show but scans and prunes still work.
//   - ConfigStore: File-backed defaults. Without it, built-in defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
