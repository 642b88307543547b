package service

import (
	"context"

	"github.com/FulloMyself/tassel-shop-backend/internal/mail"
)

// MailRelay drives the paired business + customer send performed by
// every emailing endpoint.
type MailRelay interface {
	SendPaired(ctx context.Context, business, customer mail.Message) error
}
