// Package assets embeds the default site content and the static files served
// under /static.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var data embed.FS

//go:embed static
var static embed.FS

// Data returns the default content documents, rooted at the data directory.
func Data() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the static files, rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
