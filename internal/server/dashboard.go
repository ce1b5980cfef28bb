package server

import (
	"net/http"
)

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.storage.DashboardStats(r.Context())
	if err != nil {
		respondStorageError(w, "dashboard_stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleDashboardActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := s.storage.DashboardActivity(r.Context())
	if err != nil {
		respondStorageError(w, "dashboard_activity", err)
		return
	}
	respondJSON(w, http.StatusOK, activity)
}

func (s *Server) handleAdminOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.storage.AdminOverview(r.Context())
	if err != nil {
		respondStorageError(w, "admin_overview", err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}
