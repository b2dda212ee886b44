// Package domain defines the core business entities for mdprune.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ExtensionSet: The image file extensions considered during a scan
//   - Action: What to do with orphaned images (delete, recycle, move)
//   - ScanResult: The outcome of one orphan scan
//   - ScanRecord: A persisted summary of a past run
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
