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

// giftSubmitter is the interface for relaying gift inquiries
type giftSubmitter interface {
	Submit(ctx context.Context, req models.GiftInquiry) error
}

// GiftHandler handles gift inquiry HTTP requests
type GiftHandler struct {
	gifts giftSubmitter
	log   *slog.Logger
}

// NewGiftHandler creates a new gift inquiry handler
func NewGiftHandler(gifts giftSubmitter, log *slog.Logger) *GiftHandler {
	return &GiftHandler{
		gifts: gifts,
		log:   log,
	}
}

// SendGiftInquiry handles POST /send-gift-inquiry
func (h *GiftHandler) SendGiftInquiry(w http.ResponseWriter, r *http.Request) {
	var req models.GiftInquiry

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode gift inquiry", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.gifts.Submit(r.Context(), req); err != nil {
		h.log.Error("failed to relay gift inquiry", "error", err)

		if errors.Is(err, service.ErrInvalidEmail) {
			WriteError(w, http.StatusBadRequest, "A valid email is required.", h.log)
			return
		}

		WriteError(w, http.StatusInternalServerError, "Failed to send inquiry", h.log)
		return
	}

	WriteSuccess(w, h.log)
}
