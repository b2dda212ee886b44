package domain

import (
	"strings"
	"time"
)

// DefaultExtensions is the image extension list used when the user
// provides none, matching common raster and vector formats.
const DefaultExtensions = "jpg,jpeg,png,gif,bmp,svg,webp"

// ExtensionSet is a case-insensitive set of file extensions (without dots).
type ExtensionSet map[string]struct{}

// ParseExtensions builds an ExtensionSet from a comma-separated list.
// Entries are trimmed and lowercased; empty entries are dropped.
func ParseExtensions(list string) ExtensionSet {
	set := make(ExtensionSet)
	for _, ext := range strings.Split(list, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

// Contains reports whether ext (with or without a leading dot,
// any case) is a member of the set.
func (s ExtensionSet) Contains(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	_, ok := s[ext]
	return ok
}

// IsMarkdownExt reports whether ext names a markdown document.
func IsMarkdownExt(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return ext == "md" || ext == "markdown"
}

// ScanResult is the outcome of one orphan scan.
// Orphans holds canonical paths sorted lexicographically so repeated
// runs on identical input produce identical, diffable output.
type ScanResult struct {
	// Root is the canonicalized scan root.
	Root string

	// Orphans are the canonical paths of unreferenced images, sorted.
	Orphans []string

	// ImageCount is the total number of in-scope images found.
	ImageCount int

	// MarkdownCount is the number of markdown documents scanned.
	MarkdownCount int

	// ReferencedCount is the number of distinct images protected
	// by at least one resolvable reference.
	ReferencedCount int
}

// ScanRecord is a persisted summary of a past scan or prune run.
type ScanRecord struct {
	// ID is the database row identifier.
	ID int64

	// Root is the canonical scan root.
	Root string

	// Action describes what was done with the orphans ("scan" for dry runs).
	Action string

	// OrphanCount is how many orphans the scan found.
	OrphanCount int

	// ActedCount is how many files the action processed successfully.
	ActedCount int

	// RanAt is when the run started.
	RanAt time.Time
}
