package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/FulloMyself/tassel-shop-backend/internal/config"
)

// Relay stamps the sender identity onto outgoing messages and drives
// the paired business-notification + customer-confirmation send that
// every emailing endpoint performs.
type Relay struct {
	sender   Sender
	fromName string
	fromAddr string
	business string
	log      *slog.Logger
}

// NewRelay creates a relay. The from address is the SMTP account
// itself, as most providers reject mismatched sender identities.
func NewRelay(sender Sender, cfg *config.Config, log *slog.Logger) *Relay {
	return &Relay{
		sender:   sender,
		fromName: cfg.Mail.FromName,
		fromAddr: cfg.SMTP.Username,
		business: cfg.Mail.OrderReceiver,
		log:      log,
	}
}

// SendPaired sends the business notification followed by the customer
// confirmation. The business recipient is always the configured inbox.
// Sends are strictly sequential and the customer send is not attempted
// after a business-send failure; either failure surfaces as one error.
// Note the business message may already be delivered when the customer
// send fails.
func (r *Relay) SendPaired(ctx context.Context, business, customer Message) error {
	ref := uuid.New().String()

	business.FromName = r.fromName
	business.From = r.fromAddr
	business.To = r.business

	customer.FromName = r.fromName
	customer.From = r.fromAddr

	if err := r.sender.Send(ctx, business); err != nil {
		r.log.Error("business notification failed",
			"ref", ref,
			"subject", business.Subject,
			"error", err,
		)
		return fmt.Errorf("business notification: %w", err)
	}

	if err := r.sender.Send(ctx, customer); err != nil {
		r.log.Error("customer confirmation failed",
			"ref", ref,
			"to", customer.To,
			"subject", customer.Subject,
			"error", err,
		)
		return fmt.Errorf("customer confirmation: %w", err)
	}

	r.log.Info("emails relayed",
		"ref", ref,
		"to", customer.To,
		"subject", business.Subject,
	)

	return nil
}
