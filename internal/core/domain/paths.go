package domain

import (
	"path/filepath"
	"strings"
)

// DisplayPath renders path relative to root using forward slashes
// regardless of platform. Paths outside root fall back to their
// absolute form, also slashified.
func DisplayPath(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
