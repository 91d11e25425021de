package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sakura-sushi/backend/internal/repository"
	"github.com/sakura-sushi/backend/internal/service"
)

// MenuHandler handles catalog HTTP requests.
type MenuHandler struct {
	service *service.MenuService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service *service.MenuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger,
	}
}

// ListItems handles GET /api/menu.
func (h *MenuHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		h.logger.Error("failed to list menu", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// GetItem handles GET /api/menu/{itemId}.
// Returns 400 for a non-numeric id and 404 when the item does not exist.
func (h *MenuHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "itemId")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.logger.Warn("invalid menu item ID", "itemId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		if err == repository.ErrProductNotFound {
			h.logger.Info("menu item not found", "itemId", id)
			WriteError(w, http.StatusNotFound, "Menu item not found", h.logger)
			return
		}

		h.logger.Error("failed to get menu item", "itemId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, item, h.logger)
}
