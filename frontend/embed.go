package frontend

import (
	"embed"
	"io/fs"
)

// FS embeds the dashboard page
//
//go:embed all:dist
var FS embed.FS

// Dist returns the embedded dashboard page rooted at its index.html
func Dist() (fs.FS, error) {
	sub, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, err
	}

	if _, err := fs.Stat(sub, "index.html"); err != nil {
		return nil, err
	}
	return sub, nil
}
