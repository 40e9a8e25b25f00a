package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"renthub-backend/internal/storage"
)

// MediaHandler serves images saved by the local blob storage. It is only
// mounted when storage runs in local mode; GCS serves its own URLs.
type MediaHandler struct {
	local *storage.LocalStorage
}

func NewMediaHandler(local *storage.LocalStorage) *MediaHandler {
	return &MediaHandler{local: local}
}

func (h *MediaHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" || name != filepath.Base(name) {
		writeError(w, http.StatusBadRequest, "invalid image name")
		return
	}

	file, err := h.local.Open(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(name) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
