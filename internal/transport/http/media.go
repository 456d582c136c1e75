package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// serveMedia streams a stored upload back out. References are opaque
// prefix/uuid paths, so there is nothing guessable to enumerate.
func (s *Server) serveMedia(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "*")
	f, err := s.files.Open(ref)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Not found.")
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(ref)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	_, _ = io.Copy(w, f)
}
