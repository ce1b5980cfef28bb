package server

import (
	"errors"
	"net/http"

	"github.com/coliride/backend/internal/upload"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile(upload.FieldName)
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	url, err := s.uploads.Save(file, header)
	switch {
	case errors.Is(err, upload.ErrNoFile):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondStorageError(w, "upload", err)
	default:
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"url":     url,
			"success": true,
		})
	}
}
