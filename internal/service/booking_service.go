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

var ErrMissingBookingDetails = errors.New("all booking details are required")

// BookingService relays massage booking requests.
type BookingService struct {
	relay MailRelay
	log   *slog.Logger
}

// NewBookingService creates a new booking service
func NewBookingService(relay MailRelay, log *slog.Logger) *BookingService {
	return &BookingService{
		relay: relay,
		log:   log,
	}
}

// Submit validates the booking and sends the notification pair.
func (s *BookingService) Submit(ctx context.Context, req models.BookingRequest) error {
	if !strings.Contains(req.Email, "@") || len(req.Services) == 0 {
		return ErrMissingBookingDetails
	}

	services := serviceLines(req.Services)

	businessTime := req.SelectedTime
	if businessTime == "" {
		businessTime = "Not selected yet"
	}

	business := mail.Message{
		Subject: "New Massage Booking",
		Body: fmt.Sprintf(
			"New massage booking request\n\nFor: %s\nPreferred time: %s\nCustomer: %s\n\nServices:\n%s",
			req.ForWhom, businessTime, req.Email, services,
		),
	}

	customerTime := req.SelectedTime
	if customerTime == "" {
		customerTime = "we'll confirm your time slot shortly"
	}

	customer := mail.Message{
		To:      req.Email,
		Subject: "Your Massage Booking Request",
		Body: fmt.Sprintf(
			"Hi %s,\n\nThanks for your booking request! Here's what you selected:\n\n%s\nPreferred time: %s\n\nWe'll be in touch to confirm your booking.\n",
			greetingName(req.Email), services, customerTime,
		),
	}

	if err := s.relay.SendPaired(ctx, business, customer); err != nil {
		return fmt.Errorf("booking relay: %w", err)
	}

	s.log.Info("booking relayed", "customer", req.Email, "services", len(req.Services))
	return nil
}

// serviceLines renders one "name (Rprice) - duration mins" line per
// selected service.
func serviceLines(services []models.ServiceSelection) string {
	var b strings.Builder
	for _, svc := range services {
		fmt.Fprintf(&b, "%s (R%s) - %d mins\n", svc.Name, svc.Price.StringFixed(2), svc.Duration)
	}
	return b.String()
}

// greetingName derives a salutation from the local part of the email.
func greetingName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "there"
}
