package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driving"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// Ensure ScannerService implements the interface.
var _ driving.Scanner = (*ScannerService)(nil)

// ScannerService detects orphaned images under a scan root.
type ScannerService struct {
	extractor driven.ReferenceExtractor
}

// NewScannerService creates a new scanner backed by the given extractor.
func NewScannerService(extractor driven.ReferenceExtractor) *ScannerService {
	return &ScannerService{extractor: extractor}
}

// Scan walks root once, collecting image files and markdown documents,
// extracts every resolvable image reference and returns the sorted set
// of images no document references.
//
// Traversal never follows symbolic links, and errors inside the tree
// (unreadable subdirectories, files vanishing mid-walk) skip the
// affected entry rather than aborting the scan. Only setup problems
// are fatal: a missing or non-directory root, a root that cannot be
// canonicalized, or a malformed exclude pattern.
func (s *ScannerService) Scan(ctx context.Context, root string, opts driving.ScanOptions) (*domain.ScanResult, error) {
	canonRoot, err := validateRoot(root)
	if err != nil {
		return nil, err
	}

	// Malformed patterns are configuration errors, reported before
	// any filesystem work happens.
	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPattern, pattern)
		}
	}

	images := make(map[string]struct{})
	var markdowns []string

	walkErr := filepath.WalkDir(canonRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable branch: skip it, keep scanning. Partial
			// results are acceptable, an aborted scan is not.
			logger.Warn("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if excluded(path, canonRoot, opts.Excludes) {
			logger.Debug("excluded: %s", path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		ext := filepath.Ext(path)
		switch {
		case domain.IsMarkdownExt(ext):
			markdowns = append(markdowns, path)
		case opts.Extensions.Contains(ext):
			canonical, canonErr := filepath.EvalSymlinks(path)
			if canonErr != nil {
				// Broken symlink or vanished file: drop silently.
				logger.Debug("cannot canonicalize %s: %v", path, canonErr)
				return nil
			}
			images[canonical] = struct{}{}
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanning %s: %w", canonRoot, walkErr)
	}

	referenced := make(map[string]struct{})
	for _, md := range markdowns {
		refs, extractErr := s.extractor.Extract(ctx, md, canonRoot)
		if extractErr != nil {
			// One unreadable document must not abort the run; it
			// simply protects nothing.
			logger.Warn("skipping markdown %s: %v", md, extractErr)
			continue
		}
		for ref := range refs {
			referenced[ref] = struct{}{}
		}
	}

	orphans := reconcile(images, referenced)

	logger.Info("scan complete: %d images, %d markdown files, %d orphans",
		len(images), len(markdowns), len(orphans))

	return &domain.ScanResult{
		Root:            canonRoot,
		Orphans:         orphans,
		ImageCount:      len(images),
		MarkdownCount:   len(markdowns),
		ReferencedCount: len(images) - len(orphans),
	}, nil
}

// validateRoot confirms the target exists and is a directory, then
// canonicalizes it once. Every later in-scope comparison uses this
// canonical form.
func validateRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, root)
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrNotADirectory, root)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", root, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", root, err)
	}
	return canonical, nil
}

// excluded matches the slashified root-relative path against the
// configured patterns. Patterns are validated before the walk starts.
func excluded(path, root string, patterns []string) bool {
	if len(patterns) == 0 || path == root {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// reconcile computes images minus referenced and imposes a stable
// lexicographic order so repeated runs produce diffable output.
func reconcile(images, referenced map[string]struct{}) []string {
	orphans := make([]string, 0, len(images))
	for img := range images {
		if _, ok := referenced[img]; !ok {
			orphans = append(orphans, img)
		}
	}
	sort.Strings(orphans)
	return orphans
}

// Relativize renders a scan result path for display, relative to the
// root with forward slashes and prefixed with the root's base name,
// mirroring how the orphan list is reported to the user.
func Relativize(path, root string) string {
	base := filepath.Base(root)
	rel := domain.DisplayPath(path, root)
	if strings.HasPrefix(rel, "/") {
		return rel
	}
	return base + "/" + rel
}
