package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sakura-sushi/backend/internal/models"
	"github.com/sakura-sushi/backend/internal/repository"
	"github.com/sakura-sushi/backend/internal/service"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrderResponse is the 201 envelope returned on order creation.
type CreateOrderResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Order   models.OrderProjection `json:"order"`
}

// DeleteOrderResponse is returned when an order is archived.
type DeleteOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create order", "error", err)

		switch err {
		case service.ErrEmptyOrder:
			WriteError(w, http.StatusBadRequest, "Order must contain at least one item", h.log)
		case service.ErrInvalidQuantity:
			WriteError(w, http.StatusBadRequest, "Quantity must be positive", h.log)
		case service.ErrMissingCustomer:
			WriteError(w, http.StatusBadRequest, "Customer name is required", h.log)
		case service.ErrInvalidTotal:
			WriteError(w, http.StatusBadRequest, "Total must not be negative", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Failed to create order", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, CreateOrderResponse{
		Success: true,
		Message: "Order created successfully (test mode)",
		Order:   order.Projection(),
	}, h.log)

	h.log.Info("new order received",
		"order_number", order.OrderNumber,
		"total", order.Total,
		"items_count", len(order.Items),
	)
}

// ListOrders handles GET /api/orders.
// Accepts an optional ?limit= parameter; anything non-numeric or
// non-positive falls back to the default of the 10 most recent orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	summaries, err := h.orderService.ListOrders(r.Context(), limit)
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, summaries, h.log)
}

// GetOrder handles GET /api/orders/{orderId}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		if err == repository.ErrOrderNotFound {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to get order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// UpdateStatus handles PATCH /api/orders/{orderId}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode status request", "order_id", id, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		switch err {
		case service.ErrUnknownStatus:
			WriteError(w, http.StatusBadRequest, "Unknown order status", h.log)
		case repository.ErrOrderNotFound:
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
		default:
			h.log.Error("failed to update order status", "order_id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("order status updated", "order_number", order.OrderNumber, "status", order.Status)
	WriteJSON(w, http.StatusOK, order, h.log)
}

// DeleteOrder handles DELETE /api/orders/{orderId}.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderId")

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		if err == repository.ErrOrderNotFound {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to delete order", "order_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("order archived", "order_id", id)
	WriteJSON(w, http.StatusOK, DeleteOrderResponse{
		Success: true,
		Message: "Order archived",
	}, h.log)
}
