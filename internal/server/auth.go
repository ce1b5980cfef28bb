package server

import (
	"net/http"

	"github.com/coliride/backend/internal/auth"
	"github.com/coliride/backend/internal/repository"
)

type registerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	name := req.FirstName + " " + req.LastName
	user := &repository.User{
		Email:     req.Email,
		Name:      &name,
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
	}
	if req.Phone != "" {
		user.PhoneNumber = &req.Phone
	}

	created, err := s.storage.RegisterUser(r.Context(), user, req.Password)
	if err != nil {
		respondStorageError(w, "register", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	user, err := s.storage.AuthenticateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		respondStorageError(w, "login", err)
		return
	}

	token, err := auth.IssueToken(user, s.jwtSecret, s.tokenTTL)
	if err != nil {
		respondStorageError(w, "login", err)
		return
	}
	auth.SetCookie(w, token, s.cookieMaxAge)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	auth.ClearCookie(w)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "logged out",
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromRequest(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	claims, err := auth.VerifyToken(token, s.jwtSecret)
	if err != nil {
		auth.ClearCookie(w)
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	// a token for a user that no longer exists is as good as no token
	user, err := s.storage.GetUser(r.Context(), claims.UserID)
	if err != nil {
		auth.ClearCookie(w)
		respondError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          user,
	})
}
