package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoot returns a canonicalized temp directory to act as the scan root.
// Canonicalization matters on platforms where TMPDIR is a symlink.
func newRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestResolve_URLsAreIgnored(t *testing.T) {
	root := newRoot(t)

	for _, ref := range []string{
		"http://example.com/a.png",
		"https://example.com/a.png",
		"//cdn.example.com/a.png",
		"data:image/png;base64,iVBOR",
	} {
		t.Run(ref, func(t *testing.T) {
			_, ok := Resolve(ref, root, root)
			assert.False(t, ok)
		})
	}
}

func TestResolve_RelativeToMarkdownDir(t *testing.T) {
	root := newRoot(t)
	docsDir := filepath.Join(root, "docs")
	img := filepath.Join(docsDir, "images", "a.png")
	writeFile(t, img)

	resolved, ok := Resolve("images/a.png", docsDir, root)

	require.True(t, ok)
	assert.Equal(t, img, resolved)
}

func TestResolve_RelativeToScanRoot(t *testing.T) {
	root := newRoot(t)
	docsDir := filepath.Join(root, "docs")
	require.NoError(t, os.MkdirAll(docsDir, 0755))
	img := filepath.Join(root, "assets", "b.png")
	writeFile(t, img)

	// Not reachable from docs/, so the scan-root base must win.
	resolved, ok := Resolve("assets/b.png", docsDir, root)

	require.True(t, ok)
	assert.Equal(t, img, resolved)
}

func TestResolve_MarkdownDirTakesPrecedence(t *testing.T) {
	root := newRoot(t)
	docsDir := filepath.Join(root, "docs")
	inDocs := filepath.Join(docsDir, "pic.png")
	inRoot := filepath.Join(root, "pic.png")
	writeFile(t, inDocs)
	writeFile(t, inRoot)

	resolved, ok := Resolve("pic.png", docsDir, root)

	require.True(t, ok)
	assert.Equal(t, inDocs, resolved)
}

func TestResolve_AbsolutePath(t *testing.T) {
	root := newRoot(t)
	img := filepath.Join(root, "abs.png")
	writeFile(t, img)

	t.Run("inside root resolves", func(t *testing.T) {
		resolved, ok := Resolve(img, filepath.Join(root, "docs"), root)

		require.True(t, ok)
		assert.Equal(t, img, resolved)
	})

	t.Run("outside root is discarded", func(t *testing.T) {
		outside := newRoot(t)
		escaped := filepath.Join(outside, "pic.png")
		writeFile(t, escaped)

		_, ok := Resolve(escaped, root, root)

		assert.False(t, ok)
	})
}

func TestResolve_ParentEscapeIsDiscarded(t *testing.T) {
	parent := newRoot(t)
	root := filepath.Join(parent, "scope")
	require.NoError(t, os.MkdirAll(root, 0755))
	outside := filepath.Join(parent, "outside", "pic.png")
	writeFile(t, outside)

	_, ok := Resolve("../outside/pic.png", root, root)

	assert.False(t, ok)
}

func TestResolve_PercentDecoding(t *testing.T) {
	t.Run("encoded reference finds decoded filename", func(t *testing.T) {
		root := newRoot(t)
		img := filepath.Join(root, "my photo.png")
		writeFile(t, img)

		resolved, ok := Resolve("my%20photo.png", root, root)

		require.True(t, ok)
		assert.Equal(t, img, resolved)
	})

	t.Run("raw fallback finds literally-encoded filename", func(t *testing.T) {
		root := newRoot(t)
		img := filepath.Join(root, "my%20photo.png")
		writeFile(t, img)

		resolved, ok := Resolve("my%20photo.png", root, root)

		require.True(t, ok)
		assert.Equal(t, img, resolved)
	})

	t.Run("decoded candidate wins over raw", func(t *testing.T) {
		root := newRoot(t)
		decoded := filepath.Join(root, "my photo.png")
		raw := filepath.Join(root, "my%20photo.png")
		writeFile(t, decoded)
		writeFile(t, raw)

		resolved, ok := Resolve("my%20photo.png", root, root)

		require.True(t, ok)
		assert.Equal(t, decoded, resolved)
	})

	t.Run("undecodable reference is used verbatim", func(t *testing.T) {
		root := newRoot(t)
		img := filepath.Join(root, "%zzfile.png")
		writeFile(t, img)

		resolved, ok := Resolve("%zzfile.png", root, root)

		require.True(t, ok)
		assert.Equal(t, img, resolved)
	})
}

func TestResolve_FragmentAndQueryStripped(t *testing.T) {
	root := newRoot(t)
	img := filepath.Join(root, "pic.png")
	writeFile(t, img)

	for _, ref := range []string{"pic.png#frag", "pic.png?v=2", "pic.png?v=2#frag"} {
		t.Run(ref, func(t *testing.T) {
			resolved, ok := Resolve(ref, root, root)

			require.True(t, ok)
			assert.Equal(t, img, resolved)
		})
	}
}

func TestResolve_MissingFile(t *testing.T) {
	root := newRoot(t)

	_, ok := Resolve("nowhere.png", root, root)

	assert.False(t, ok)
}

func TestResolve_EmptyReference(t *testing.T) {
	root := newRoot(t)

	_, ok := Resolve("", root, root)

	assert.False(t, ok)
}

func TestResolve_SymlinkedImageCanonicalized(t *testing.T) {
	root := newRoot(t)
	target := filepath.Join(root, "real.png")
	writeFile(t, target)
	link := filepath.Join(root, "link.png")
	require.NoError(t, os.Symlink(target, link))

	resolved, ok := Resolve("link.png", root, root)

	require.True(t, ok)
	assert.Equal(t, target, resolved)
}
