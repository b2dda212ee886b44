package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.ReferenceExtractor = (*Extractor)(nil)

var (
	// imagePattern matches markdown image syntax: ![alt](target) and
	// ![alt](target "title"). The optional quoted title is excluded
	// from the captured target.
	imagePattern = regexp.MustCompile(`!\[.*?\]\(([^)]+?)(?:\s+["'].*?["'])?\)`)

	// htmlPattern matches HTML image tags: <img ... src="target"> with
	// either quote style. Only the quoted value is captured.
	htmlPattern = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)
)

// Extractor pulls image references out of markdown documents.
type Extractor struct{}

// New creates a new markdown reference extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the markdown file and returns the canonical paths of every
// referenced image that resolves inside scanRoot. Both markdown and HTML
// image syntaxes are recognised; a shared accumulating set de-duplicates
// references matched by both.
func (e *Extractor) Extract(_ context.Context, markdownPath, scanRoot string) (map[string]struct{}, error) {
	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrReadFile, markdownPath, err)
	}

	markdownDir := filepath.Dir(markdownPath)
	references := make(map[string]struct{})

	for _, pattern := range []*regexp.Regexp{imagePattern, htmlPattern} {
		for _, match := range pattern.FindAllStringSubmatch(string(content), -1) {
			target := strings.TrimSpace(match[1])
			if resolved, ok := Resolve(target, markdownDir, scanRoot); ok {
				references[resolved] = struct{}{}
			}
		}
	}

	return references, nil
}
