package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
)

type createNotificationRequest struct {
	UserID  string  `json:"userId" validate:"required"`
	Type    string  `json:"type" validate:"required"`
	Message string  `json:"message" validate:"required"`
	Link    *string `json:"link"`
}

func (s *Server) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	n := &repository.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Message: req.Message,
		Link:    req.Link,
	}

	created, err := s.storage.CreateNotification(r.Context(), n)
	if err != nil {
		respondStorageError(w, "create_notification", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListNotifications(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_notifications", err)
		return
	}
	respondList(w, items, total, p)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.MarkNotificationRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStorageError(w, "mark_notification_read", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"read": true})
}
