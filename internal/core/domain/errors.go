package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDirectoryNotFound indicates the target directory does not exist.
	ErrDirectoryNotFound = errors.New("directory does not exist")

	// ErrNotADirectory indicates the target path exists but is not a directory.
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidPattern indicates a malformed exclude pattern.
	// Pattern errors are fatal and reported before any scanning begins.
	ErrInvalidPattern = errors.New("invalid exclude pattern")

	// ErrReadFile indicates a markdown document could not be read.
	// The scan recovers locally: that file contributes no references.
	ErrReadFile = errors.New("failed to read file")

	// ErrTrashUnsupported indicates the platform has no known recycle bin.
	ErrTrashUnsupported = errors.New("system trash not supported on this platform")

	// ErrNoTerminal indicates interactive mode was requested without a TTY.
	ErrNoTerminal = errors.New("interactive mode requires a terminal")
)
