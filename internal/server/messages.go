package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
)

type sendMessageRequest struct {
	SenderID    string  `json:"senderId" validate:"required"`
	RecipientID string  `json:"recipientId" validate:"required"`
	MatchID     *string `json:"matchId"`
	Subject     *string `json:"subject"`
	Content     string  `json:"content" validate:"required"`
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	msg := &repository.Message{
		SenderID:    req.SenderID,
		RecipientID: req.RecipientID,
		MatchID:     req.MatchID,
		Subject:     req.Subject,
		Content:     req.Content,
	}

	created, err := s.storage.SendMessage(r.Context(), msg)
	if err != nil {
		respondStorageError(w, "send_message", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListMessages(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_messages", err)
		return
	}
	respondList(w, items, total, p)
}

func (s *Server) handleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.MarkMessageRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStorageError(w, "mark_message_read", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"read": true})
}
