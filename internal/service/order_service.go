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

var (
	ErrEmailRequired = errors.New("customer email required")
	ErrNoItems       = errors.New("no items in order")
)

// OrderService relays storefront orders to the business inbox and
// confirms them to the customer.
type OrderService struct {
	relay MailRelay
	log   *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(relay MailRelay, log *slog.Logger) *OrderService {
	return &OrderService{
		relay: relay,
		log:   log,
	}
}

// Submit validates the order and sends the notification pair.
// Validation errors are returned before any send is attempted.
func (s *OrderService) Submit(ctx context.Context, req models.OrderRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return ErrEmailRequired
	}

	if len(req.Items) == 0 {
		return ErrNoItems
	}

	summary := orderSummary(req)

	business := mail.Message{
		Subject: "New Tassel Shop Order",
		Body:    fmt.Sprintf("Order from: %s\n\n%s", req.Email, summary),
	}

	customer := mail.Message{
		To:      req.Email,
		Subject: "Your Tassel Shop Order",
		Body: fmt.Sprintf(
			"Hi,\n\nThanks for your order! Here is a copy of what we received:\n\n%s\nWe'll be in touch as soon as your order is on its way.",
			summary,
		),
	}

	if err := s.relay.SendPaired(ctx, business, customer); err != nil {
		return fmt.Errorf("order relay: %w", err)
	}

	s.log.Info("order relayed", "customer", req.Email, "items", len(req.Items))
	return nil
}

// orderSummary renders the items, total and delivery block shared by
// both messages.
func orderSummary(req models.OrderRequest) string {
	var b strings.Builder

	b.WriteString("Items:\n")
	for _, item := range req.Items {
		fmt.Fprintf(&b, "%s x%d (R%s) = R%s\n",
			item.Name,
			item.Quantity,
			item.EffectivePrice().StringFixed(2),
			item.LineTotal().StringFixed(2),
		)
	}

	fmt.Fprintf(&b, "\nTotal: R%s\n\n", req.Total.StringFixed(2))
	b.WriteString(deliveryBlock(req))
	b.WriteString("\n")

	return b.String()
}

func deliveryBlock(req models.OrderRequest) string {
	if req.DeliveryOption == "delivery" && req.Delivery != nil {
		return fmt.Sprintf(
			"Delivery to:\nName: %s\nPhone: %s\nEmail: %s\nAddress: %s",
			req.Delivery.Name,
			req.Delivery.Phone,
			req.Delivery.Email,
			req.Delivery.Address,
		)
	}
	return "Delivery: collection in store."
}
