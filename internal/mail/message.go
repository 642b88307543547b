package mail

import "context"

// Message is a single outbound email, built per request and discarded
// after the send.
type Message struct {
	FromName string
	From     string
	To       string
	Subject  string
	Body     string // plain text
}

// Sender abstracts the outbound mail provider so handlers and services
// can be tested without a live SMTP connection.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
