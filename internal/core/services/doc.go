// Package services implements the core business logic for mdprune.
//
// Services implement the driving ports (what the CLI calls) and depend
// only on the driven ports (what infrastructure provides):
//
//   - ScannerService: walks the tree, partitions images and markdown,
//     unions per-document reference sets and reconciles the orphan list
//   - PruneService: applies a removal action to orphans and records
//     the run in history
//
// # Import Rules
//
//   - Can Import: domain, ports, logger
//   - Cannot Import: Any adapter or extractor implementation
package services
