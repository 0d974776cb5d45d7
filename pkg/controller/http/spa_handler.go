package http

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// SPAHandler serves static assets and answers every unknown path with index.html
type SPAHandler struct {
	fsys  fs.FS
	index []byte
}

// NewSPAHandler creates a new SPA handler. fsys must contain index.html at
// its root.
func NewSPAHandler(fsys fs.FS) (*SPAHandler, error) {
	index, err := fs.ReadFile(fsys, "index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open index.html for SPA handler")
	}

	return &SPAHandler{
		fsys:  fsys,
		index: index,
	}, nil
}

// ServeHTTP implements the http.Handler interface for SPA routing
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || name == "index.html" {
		h.serveIndex(w)
		return
	}

	stat, err := fs.Stat(h.fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		h.serveIndex(w)
		return
	case err != nil:
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	case stat.IsDir():
		h.serveIndex(w)
		return
	}

	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if contentType := getContentType(name); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *SPAHandler) serveIndex(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.index)
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".png":  "image/png",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	return mimeTypes[path.Ext(filePath)]
}
