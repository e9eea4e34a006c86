package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// handleStatic serves files from the static directory and falls back to
// the front-end entry point for every other GET.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if name != "/" && serveFile(w, r, filepath.Join(s.cfg.StaticDir, filepath.FromSlash(name))) {
		return
	}
	if !serveFile(w, r, filepath.Join(s.cfg.StaticDir, "index.html")) {
		http.NotFound(w, r)
	}
}

// serveFile writes a regular file and reports whether it did. Unlike
// http.ServeFile it never redirects requests ending in /index.html.
func serveFile(w http.ResponseWriter, r *http.Request, full string) bool {
	f, err := os.Open(full)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}
