package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
)

type createPackageRequest struct {
	UserID          string       `json:"userId" validate:"required"`
	Title           string       `json:"title" validate:"required"`
	Description     *string      `json:"description"`
	Weight          *FloatNumber `json:"weight"`
	Dimensions      *string      `json:"dimensions"`
	PickupAddress   string       `json:"pickupAddress" validate:"required"`
	DeliveryAddress string       `json:"deliveryAddress" validate:"required"`
	PickupLat       *FloatNumber `json:"pickupLat"`
	PickupLng       *FloatNumber `json:"pickupLng"`
	DeliveryLat     *FloatNumber `json:"deliveryLat"`
	DeliveryLng     *FloatNumber `json:"deliveryLng"`
	ImageURL        *string      `json:"imageUrl"`
}

func (s *Server) handleCreatePackage(w http.ResponseWriter, r *http.Request) {
	var req createPackageRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	pkg := &repository.Package{
		UserID:          req.UserID,
		Title:           req.Title,
		Description:     req.Description,
		Weight:          req.Weight.Ptr(),
		Dimensions:      req.Dimensions,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		PickupLat:       req.PickupLat.Ptr(),
		PickupLng:       req.PickupLng.Ptr(),
		DeliveryLat:     req.DeliveryLat.Ptr(),
		DeliveryLng:     req.DeliveryLng.Ptr(),
		ImageURL:        req.ImageURL,
	}

	created, err := s.storage.CreatePackage(r.Context(), pkg)
	if err != nil {
		respondStorageError(w, "create_package", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := s.storage.GetPackage(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStorageError(w, "get_package", err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}

func (s *Server) handleListPackages(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListPackages(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_packages", err)
		return
	}
	respondList(w, items, total, p)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) handleUpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	pkg, err := s.storage.UpdatePackageStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondStorageError(w, "update_package_status", err)
		return
	}
	respondJSON(w, http.StatusOK, pkg)
}
