package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/internal/service"
)

// PaymentHandler handles the simulated payment endpoint.
type PaymentHandler struct {
	payments *service.PaymentService
	log      *slog.Logger
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(payments *service.PaymentService, log *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		log:      log,
	}
}

// PaymentResponse wraps the fabricated transaction receipt.
type PaymentResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message"`
	Transaction models.Transaction `json:"transaction"`
}

// Simulate handles POST /api/payment/simulate.
func (h *PaymentHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode payment request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	tx, err := h.payments.Simulate(r.Context(), req)
	if err != nil {
		if err == service.ErrInvalidAmount {
			WriteError(w, http.StatusBadRequest, "Amount must be positive", h.log)
			return
		}

		h.log.Error("failed to simulate payment", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("payment simulated", "transaction_id", tx.ID, "amount", tx.Amount, "currency", tx.Currency)
	WriteJSON(w, http.StatusOK, PaymentResponse{
		Success:     true,
		Message:     "Payment simulation successful",
		Transaction: *tx,
	}, h.log)
}
