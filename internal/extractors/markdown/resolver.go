package markdown

import (
	"net/url"
	"path/filepath"
	"strings"
)

// urlPrefixes mark references that must never be resolved against the
// filesystem: remote images, protocol-relative URLs and data URIs.
var urlPrefixes = [...]string{"http://", "https://", "//", "data:"}

// isURL reports whether ref points at a remote or inline resource.
func isURL(ref string) bool {
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

// Resolve turns a raw reference string from a markdown document into the
// canonical path of an existing file inside scanRoot. markdownDir is the
// directory of the referencing document and scanRoot must already be
// canonicalized.
//
// Resolution precedence is a contract, not an implementation detail:
// the percent-decoded reference is tried first against markdownDir, then
// scanRoot, then as an absolute path; only if all three fail is the raw,
// undecoded string retried the same way. This recovers references whose
// on-disk filename was never percent-encoded even though the markdown
// encoded it, and vice versa.
//
// Resolution failure is not an error: the second return is false and the
// reference simply contributes nothing.
func Resolve(rawRef, markdownDir, scanRoot string) (string, bool) {
	if isURL(rawRef) {
		return "", false
	}

	decoded, err := url.PathUnescape(rawRef)
	if err != nil {
		decoded = rawRef
	}

	clean := stripFragmentQuery(decoded)

	if resolved, ok := tryResolve(clean, markdownDir, scanRoot); ok {
		return resolved, true
	}

	if clean != rawRef {
		if resolved, ok := tryResolve(stripFragmentQuery(rawRef), markdownDir, scanRoot); ok {
			return resolved, true
		}
	}

	return "", false
}

// stripFragmentQuery drops everything from the first '#' or '?' onward.
func stripFragmentQuery(ref string) string {
	ref, _, _ = strings.Cut(ref, "#")
	ref, _, _ = strings.Cut(ref, "?")
	return ref
}

// tryResolve attempts the three resolution bases in order, first success
// wins: relative to the markdown file's directory, relative to the scan
// root, and as an absolute path. A candidate is accepted only when it
// canonicalizes to a path inside scanRoot.
func tryResolve(ref, markdownDir, scanRoot string) (string, bool) {
	if ref == "" {
		return "", false
	}

	if canonical, ok := canonicalInRoot(joinRef(markdownDir, ref), scanRoot); ok {
		return canonical, true
	}

	if canonical, ok := canonicalInRoot(joinRef(scanRoot, ref), scanRoot); ok {
		return canonical, true
	}

	if filepath.IsAbs(ref) {
		if canonical, ok := canonicalInRoot(ref, scanRoot); ok {
			return canonical, true
		}
	}

	return "", false
}

// joinRef resolves ref against base. Absolute references ignore the base.
func joinRef(base, ref string) string {
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(base, filepath.FromSlash(ref))
}

// canonicalInRoot canonicalizes candidate and accepts it only when the
// file exists (EvalSymlinks fails otherwise) and the canonical result
// lies within root.
func canonicalInRoot(candidate, root string) (string, bool) {
	canonical, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return "", false
	}
	if !filepath.IsAbs(canonical) {
		canonical, err = filepath.Abs(canonical)
		if err != nil {
			return "", false
		}
	}
	if !withinRoot(canonical, root) {
		return "", false
	}
	return canonical, true
}

// withinRoot reports whether path equals root or is inside it,
// comparing whole path components rather than raw string prefixes.
func withinRoot(path, root string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
