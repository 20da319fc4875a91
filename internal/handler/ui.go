package handler

import (
	"io/fs"
	"net/http"
)

// UIHandler serves the bundled web console.
type UIHandler struct {
	assets fs.FS
	static http.Handler
}

// NewUIHandler serves index.html and the files beneath assets.
func NewUIHandler(assets fs.FS) *UIHandler {
	return &UIHandler{
		assets: assets,
		static: http.StripPrefix("/static/", http.FileServer(http.FS(assets))),
	}
}

// Index handles GET /.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(h.assets, "index.html")
	if err != nil {
		writeError(w, http.StatusNotFound, "resource not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(data)
}

// Static handles GET /static/*.
func (h *UIHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}
