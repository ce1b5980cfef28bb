package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
	"github.com/coliride/backend/internal/storage"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListUsers(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_users", err)
		return
	}
	respondList(w, items, total, p)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.storage.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStorageError(w, "get_user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type updateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Name        *string `json:"name"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	Role        *string `json:"role"`
	IsVerified  *bool   `json:"isVerified"`
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	if req.Role != nil && !repository.ValidRole(*req.Role) {
		respondError(w, http.StatusBadRequest, "unknown role")
		return
	}

	user, err := s.storage.UpdateUser(r.Context(), mux.Vars(r)["id"], storage.UserUpdate{
		Email:       req.Email,
		Name:        req.Name,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Role:        req.Role,
		IsVerified:  req.IsVerified,
	})
	if err != nil {
		respondStorageError(w, "update_user", err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteUser(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStorageError(w, "delete_user", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
