package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/FulloMyself/tassel-shop-backend/internal/models"
	"github.com/FulloMyself/tassel-shop-backend/internal/service"
)

// orderSubmitter is the interface for relaying orders
type orderSubmitter interface {
	Submit(ctx context.Context, req models.OrderRequest) error
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders orderSubmitter
	log    *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders orderSubmitter, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// SendOrder handles POST /send-order
func (h *OrderHandler) SendOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.orders.Submit(r.Context(), req); err != nil {
		h.log.Error("failed to relay order", "error", err)

		switch {
		case errors.Is(err, service.ErrEmailRequired):
			WriteError(w, http.StatusBadRequest, "Customer email is required.", h.log)
		case errors.Is(err, service.ErrNoItems):
			WriteError(w, http.StatusBadRequest, "No items in order.", h.log)
		default:
			WriteError(w, http.StatusInternalServerError, "Failed to send email.", h.log)
		}
		return
	}

	WriteSuccess(w, h.log)
}
