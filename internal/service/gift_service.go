package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/FulloMyself/tassel-shop-backend/internal/mail"
	"github.com/FulloMyself/tassel-shop-backend/internal/models"
)

var ErrInvalidEmail = errors.New("a valid email is required")

// GiftService relays gift inquiries from the storefront contact form.
type GiftService struct {
	relay MailRelay
	log   *slog.Logger
}

// NewGiftService creates a new gift inquiry service
func NewGiftService(relay MailRelay, log *slog.Logger) *GiftService {
	return &GiftService{
		relay: relay,
		log:   log,
	}
}

// Submit validates the inquiry and sends the notification pair.
// The email check is containment of "@", not full RFC validation,
// matching the storefront's own check.
func (s *GiftService) Submit(ctx context.Context, req models.GiftInquiry) error {
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidEmail
	}

	business := mail.Message{
		Subject: "New Gift Inquiry",
		Body: fmt.Sprintf(
			"New gift inquiry\n\nName: %s\nEmail: %s\nPhone: %s\n\nMessage:\n%s\n",
			req.Name, req.Email, req.Phone, req.Message,
		),
	}

	customer := mail.Message{
		To:      req.Email,
		Subject: "We received your gift inquiry",
		Body: fmt.Sprintf(
			"Hi %s,\n\nThanks for reaching out about our gift options! We received your message:\n\n\"%s\"\n\nWe'll get back to you shortly.\n",
			req.Name, req.Message,
		),
	}

	if err := s.relay.SendPaired(ctx, business, customer); err != nil {
		return fmt.Errorf("gift inquiry relay: %w", err)
	}

	s.log.Info("gift inquiry relayed", "customer", req.Email)
	return nil
}
