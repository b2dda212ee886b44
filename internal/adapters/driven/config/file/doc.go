// Package file provides a TOML-backed configuration store.
//
// Configuration supplies defaults for flags the user did not pass:
//
//	extensions = "jpg,jpeg,png,gif,bmp,svg,webp"
//	action = "recycle"
//	move_dir = "/path/to/holding"
//	exclude = ["vendor/**", "node_modules/**"]
//
// A missing config file is not an error; a malformed one is fatal at
// startup so bad configuration never silently changes what gets removed.
package file
