package driven

import "context"

// ReferenceExtractor pulls image references out of one markdown document
// and resolves them to canonical on-disk paths.
type ReferenceExtractor interface {
	// Extract reads the markdown file at markdownPath and returns the set
	// of canonical paths of every image it references that resolves to a
	// file inside scanRoot. scanRoot must already be canonicalized.
	//
	// References that are URLs, fail to resolve, or resolve outside
	// scanRoot are silently dropped. The returned error is non-nil only
	// when the file itself cannot be read.
	Extract(ctx context.Context, markdownPath, scanRoot string) (map[string]struct{}, error)
}
