// Package assets bundles the default word lists shipped with the server.
package assets

import (
	"embed"
	"io/fs"
)

// Names of the embedded lists.
const (
	StartWords = "start.txt"
	Dictionary = "dictionary.txt"
)

//go:embed start.txt dictionary.txt
var files embed.FS

// Open opens one of the embedded lists. Parsing is left to the caller.
func Open(name string) (fs.File, error) {
	return files.Open(name)
}
