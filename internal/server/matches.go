package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
)

type createMatchRequest struct {
	PackageID        string       `json:"packageId" validate:"required"`
	RideID           string       `json:"rideId" validate:"required"`
	Price            *FloatNumber `json:"price"`
	ProposedByUserID *string      `json:"proposedByUserId"`
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	match := &repository.Match{
		PackageID:        req.PackageID,
		RideID:           req.RideID,
		Price:            req.Price.Ptr(),
		ProposedByUserID: req.ProposedByUserID,
	}

	created, err := s.storage.CreateMatch(r.Context(), match)
	if err != nil {
		respondStorageError(w, "create_match", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.storage.GetMatch(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStorageError(w, "get_match", err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListMatches(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_matches", err)
		return
	}
	respondList(w, items, total, p)
}

func (s *Server) handleUpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	match, err := s.storage.UpdateMatchStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondStorageError(w, "update_match_status", err)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

func (s *Server) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteMatch(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStorageError(w, "delete_match", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "match deleted"})
}
