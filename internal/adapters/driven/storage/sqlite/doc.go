// Package sqlite provides SQLite-backed persistence for mdprune.
//
// The only stored data is run history: one row per scan or prune run,
// summarising what was found and what was done. The database lives in
// the mdprune data directory and uses WAL mode so a watch process and
// a manual run can coexist.
package sqlite
