package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coliride/backend/internal/repository"
)

type createPaymentRequest struct {
	UserID          string      `json:"userId" validate:"required"`
	MatchID         string      `json:"matchId" validate:"required"`
	Amount          FloatNumber `json:"amount" validate:"required,gt=0"`
	Currency        string      `json:"currency"`
	PaymentMethod   *string     `json:"paymentMethod"`
	TransactionID   *string     `json:"transactionId"`
	PaymentIntentID *string     `json:"paymentIntentId"`
}

func (s *Server) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if details, err := readJSON(w, r, &req); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, err.Error(), details)
		return
	}

	payment := &repository.Payment{
		UserID:          req.UserID,
		MatchID:         req.MatchID,
		Amount:          float64(req.Amount),
		Currency:        req.Currency,
		PaymentMethod:   req.PaymentMethod,
		TransactionID:   req.TransactionID,
		PaymentIntentID: req.PaymentIntentID,
	}

	created, err := s.storage.CreatePayment(r.Context(), payment)
	if err != nil {
		respondStorageError(w, "create_payment", err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	p := listParamsFromRequest(r)
	items, total, err := s.storage.ListPayments(r.Context(), p)
	if err != nil {
		respondStorageError(w, "list_payments", err)
		return
	}
	respondList(w, items, total, p)
}

func (s *Server) handleRefundPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := s.storage.RefundPayment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondStorageError(w, "refund_payment", err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}
