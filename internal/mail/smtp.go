package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/FulloMyself/tassel-shop-backend/internal/config"
)

// SMTPSender delivers messages through an SMTP provider.
// It makes exactly one delivery attempt per message; retry and
// classification of provider errors are out of scope.
type SMTPSender struct {
	client *gomail.Client
}

// NewSMTPSender builds a sender from the SMTP connection settings.
// Secure selects implicit TLS; otherwise STARTTLS is used when the
// server offers it.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}

	if cfg.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{client: client}, nil
}

// Send delivers one message and reports the provider error as-is.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()

	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", msg.From, err)
	}

	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
