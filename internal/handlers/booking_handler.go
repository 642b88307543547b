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

// bookingSubmitter is the interface for relaying massage bookings
type bookingSubmitter interface {
	Submit(ctx context.Context, req models.BookingRequest) error
}

// BookingHandler handles massage booking HTTP requests
type BookingHandler struct {
	bookings bookingSubmitter
	log      *slog.Logger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings bookingSubmitter, log *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		log:      log,
	}
}

// SendBooking handles POST /send-massage-booking
func (h *BookingHandler) SendBooking(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode booking request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.bookings.Submit(r.Context(), req); err != nil {
		h.log.Error("failed to relay booking", "error", err)

		if errors.Is(err, service.ErrMissingBookingDetails) {
			WriteError(w, http.StatusBadRequest, "All booking details are required.", h.log)
			return
		}

		WriteError(w, http.StatusInternalServerError, "Failed to send booking email.", h.log)
		return
	}

	WriteSuccess(w, h.log)
}
