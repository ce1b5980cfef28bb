package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
)

type createRideRequest struct {
	UserID               string       `json:"userId" validate:"required"`
	StartLocation        string       `json:"startLocation" validate:"required"`
	EndLocation          string       `json:"endLocation" validate:"required"`
	StartLat             *FloatNumber `json:"startLat"`
	StartLng             *FloatNumber `json:"startLng"`
	EndLat               *FloatNumber `json:"endLat"`
	EndLng               *FloatNumber `json:"endLng"`
	DepartureTime        time.Time    `json:"departureTime" validate:"required"`
	EstimatedArrivalTime *time.Time   `json:"estimatedArrivalTime"`
	VehicleType          *string      `json:"vehicleType"`
	AvailableSeats       *IntNumber   `json:"availableSeats"`
	MaxPackageWeight     *FloatNumber `json:"maxPackageWeight"`
	MaxPackageSize       *string      `json:"maxPackageSize"`
	PricePerKg           *FloatNumber `json:"pricePerKg"`
	PricePerSeat         *FloatNumber `json:"pricePerSeat"`
	Notes                *string      `json:"notes"`
}

func (s *Server) handleCreateRide(w http.ResponseWriter, r *http.Request) {
	var req createRideRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	ride := &repository.Ride{
		UserID:               req.UserID,
		StartLocation:        req.StartLocation,
		EndLocation:          req.EndLocation,
		StartLat:             req.StartLat.Ptr(),
		StartLng:             req.StartLng.Ptr(),
		EndLat:               req.EndLat.Ptr(),
		EndLng:               req.EndLng.Ptr(),
		DepartureTime:        req.DepartureTime,
		EstimatedArrivalTime: req.EstimatedArrivalTime,
		VehicleType:          req.VehicleType,
		AvailableSeats:       req.AvailableSeats.Ptr(),
		MaxPackageWeight:     req.MaxPackageWeight.Ptr(),
		MaxPackageSize:       req.MaxPackageSize,
		PricePerKg:           req.PricePerKg.Ptr(),
		PricePerSeat:         req.PricePerSeat.Ptr(),
		Notes:                req.Notes,
	}

	created, err := s.storage.CreateRide(r.Context(), ride)
	if err != nil {
		respondStorageError(w, "create_ride", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetRide(w http.ResponseWriter, r *http.Request) {
	ride, err := s.storage.GetRide(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStorageError(w, "get_ride", err)
		return
	}
	respondJSON(w, http.StatusOK, ride)
}

func (s *Server) handleListRides(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListRides(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_rides", err)
		return
	}
	respondList(w, items, total, p)
}

func (s *Server) handleDeleteRide(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.DeleteRide(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondStorageError(w, "delete_ride", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "ride deleted"})
}

func (s *Server) handleUpdateRideStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	ride, err := s.storage.UpdateRideStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondStorageError(w, "update_ride_status", err)
		return
	}
	respondJSON(w, http.StatusOK, ride)
}
