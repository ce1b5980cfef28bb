package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/coliride/backend/internal/metrics"
	"github.com/coliride/backend/internal/repository"
	"github.com/coliride/backend/internal/storage"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zap.L().Error("response encode failed", zap.Error(err))
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondErrorDetails(w http.ResponseWriter, status int, message string, details interface{}) {
	respondJSON(w, status, map[string]interface{}{"error": message, "details": details})
}

// listResponse is the envelope every collection endpoint returns.
type listResponse struct {
	Items      interface{} `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

func respondList(w http.ResponseWriter, items interface{}, total int, p repository.ListParams) {
	respondJSON(w, http.StatusOK, listResponse{
		Items:      items,
		Total:      total,
		Page:       p.Page,
		TotalPages: repository.TotalPages(total, p.Limit),
	})
}

// respondStorageError maps the storage sentinel errors onto status codes and
// hides everything else behind a 500.
func respondStorageError(w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, repository.ErrInvalidTransition):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrBadReference):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrRefundNotAllowed):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		zap.L().Error("operation failed", zap.String("operation", operation), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
