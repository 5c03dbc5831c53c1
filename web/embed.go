// Package web provides the embedded dashboard templates.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templatesFS embed.FS

// Templates returns the embedded template filesystem with the path prefix
// stripped (templates at root, not templates/).
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
