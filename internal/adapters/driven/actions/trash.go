package actions

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"
	"github.com/tidydocs/mdprune-cli/internal/core/ports/driven"
	"github.com/tidydocs/mdprune-cli/internal/logger"
)

// Ensure Trash implements the interface.
var _ driven.ActionExecutor = (*Trash)(nil)

// Trash moves files to the system recycle bin.
//
// On Linux and the BSDs it follows the freedesktop.org Trash
// specification: files land in $XDG_DATA_HOME/Trash/files with a
// matching .trashinfo record in Trash/info, so desktop environments can
// list and restore them. On macOS files are moved into ~/.Trash.
type Trash struct {
	filesDir string
	infoDir  string // empty when the platform keeps no info records
}

// NewTrash creates a trash executor for the current platform.
// Returns domain.ErrTrashUnsupported where no trash location is known.
func NewTrash() (*Trash, error) {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("locating trash: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		trashDir := filepath.Join(dataHome, "Trash")
		return &Trash{
			filesDir: filepath.Join(trashDir, "files"),
			infoDir:  filepath.Join(trashDir, "info"),
		}, nil

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locating trash: %w", err)
		}
		return &Trash{filesDir: filepath.Join(home, ".Trash")}, nil

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrTrashUnsupported, runtime.GOOS)
	}
}

// Name identifies the executor for output.
func (t *Trash) Name() string {
	return "Recycled"
}

// Execute moves each file to the trash in order. The first failure aborts.
func (t *Trash) Execute(ctx context.Context, paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	if err := os.MkdirAll(t.filesDir, 0700); err != nil {
		return 0, fmt.Errorf("failed to create trash directory %s: %w", t.filesDir, err)
	}
	if t.infoDir != "" {
		if err := os.MkdirAll(t.infoDir, 0700); err != nil {
			return 0, fmt.Errorf("failed to create trash directory %s: %w", t.infoDir, err)
		}
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := t.trashFile(path); err != nil {
			return i, fmt.Errorf("failed to move to recycle bin: %s: %w", path, err)
		}
		logger.Debug("recycled %s", path)
	}
	return len(paths), nil
}

// trashFile moves one file into the trash. The info record is written
// before the move so a crash cannot leave an untracked trashed file;
// if the move fails the record is cleaned up again.
func (t *Trash) trashFile(path string) error {
	name := t.freeName(filepath.Base(path))
	target := filepath.Join(t.filesDir, name)

	if t.infoDir != "" {
		info := filepath.Join(t.infoDir, name+".trashinfo")
		content := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
			escapePath(path), time.Now().Format("2006-01-02T15:04:05"))
		if err := os.WriteFile(info, []byte(content), 0600); err != nil {
			return err
		}
		if err := moveFile(path, target); err != nil {
			os.Remove(info)
			return err
		}
		return nil
	}

	return moveFile(path, target)
}

// freeName finds a basename free in the files directory and, where info
// records are kept, free of a matching .trashinfo as well.
func (t *Trash) freeName(base string) string {
	taken := func(name string) bool {
		if exists(filepath.Join(t.filesDir, name)) {
			return true
		}
		return t.infoDir != "" && exists(filepath.Join(t.infoDir, name+".trashinfo"))
	}

	if !taken(base) {
		return base
	}

	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]
	for counter := 1; ; counter++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, counter, ext)
		if !taken(candidate) {
			return candidate
		}
	}
}

// escapePath percent-encodes a path for a .trashinfo record, as the
// freedesktop.org spec requires.
func escapePath(path string) string {
	u := url.URL{Path: path}
	return u.EscapedPath()
}
