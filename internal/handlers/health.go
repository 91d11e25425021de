package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sakura-sushi/backend/internal/service"
)

// HealthHandler provides the health check endpoint.
type HealthHandler struct {
	orders *service.OrderService
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(orders *service.OrderService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		orders: orders,
		logger: logger,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string    `json:"status"`
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Timestamp   time.Time `json:"timestamp"`
	OrdersCount int       `json:"ordersCount"`
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.orders.OrdersCount(r.Context())
	if err != nil {
		h.logger.Error("failed to count orders", "error", err)
	}

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:      "OK",
		Service:     "Sushi Bar API",
		Version:     "1.0.0",
		Timestamp:   time.Now().UTC(),
		OrdersCount: count,
	}, h.logger)
}
