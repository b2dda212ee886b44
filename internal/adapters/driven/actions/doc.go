// Package actions implements the removal executors for orphaned images.
//
// Three executors implement the driven.ActionExecutor port:
//
//   - Delete: permanent removal via os.Remove
//   - Trash: move to the system recycle bin (XDG Trash on Linux/BSD,
//     ~/.Trash on macOS)
//   - Move: relocation to a holding directory with collision-safe names
//
// All executors share batch semantics: files are processed in order and
// the first failure aborts the batch, returning the count of files
// already handled. Partial destructive operations are never swallowed.
package actions
